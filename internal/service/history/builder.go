package history

import (
	"context"
	"fmt"

	"github.com/m04kA/cappadocia-tours/internal/domain"
)

// Builder собирает снимок прошлых бронирований для сервиса прогнозов
type Builder struct {
	packageRepo PackageRepository
	serviceRepo ServiceRepository
	logger      Logger
}

// NewBuilder создает новый экземпляр Builder
func NewBuilder(packageRepo PackageRepository, serviceRepo ServiceRepository, logger Logger) *Builder {
	return &Builder{
		packageRepo: packageRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Build возвращает по одной записи на каждое бронирование.
// Ошибка чтения любой из таблиц возвращается вызывающему; некорректные даты
// отдельной записи дают duration = 1 и не прерывают сборку.
func (b *Builder) Build(ctx context.Context) ([]domain.HistoricalRecord, error) {
	packages, err := b.packageRepo.List(ctx, domain.PackageFilter{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchPackages, err)
	}

	services, err := b.serviceRepo.List(ctx, domain.ServiceFilter{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchServices, err)
	}

	names := make(map[int64]string, len(services))
	for _, s := range services {
		names[s.ID] = s.Name
	}

	records := make([]domain.HistoricalRecord, 0, len(packages))
	for _, p := range packages {
		records = append(records, toRecord(p, names))
	}

	b.logger.Info("Build: %d historical records from %d services", len(records), len(services))
	return records, nil
}

func toRecord(p *domain.Package, names map[int64]string) domain.HistoricalRecord {
	serviceNames := make([]string, 0, len(p.Services))
	for _, id := range p.Services {
		name, ok := names[id]
		if !ok {
			name = domain.UnknownServiceName
		}
		serviceNames = append(serviceNames, name)
	}

	roomType := p.RoomType
	if roomType == "" {
		roomType = domain.DefaultRoomType
	}

	return domain.HistoricalRecord{
		Nationality: p.Nationality,
		City:        p.City,
		AgeGender:   p.AgeGender(),
		Group:       p.Group,
		Duration:    p.Duration(),
		RoomType:    string(roomType),
		Services:    serviceNames,
	}
}
