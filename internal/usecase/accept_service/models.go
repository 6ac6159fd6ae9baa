package accept_service

// Policy правило подтверждения услуг персоналом
type Policy string

const (
	// PolicyPermissive любая услуга, повторы разрешены
	PolicyPermissive Policy = "permissive"
	// PolicyStrict только запрошенные гостем и еще не подтвержденные услуги
	PolicyStrict Policy = "strict"
)

// Request модель запроса на подтверждение услуги
type Request struct {
	PackageID int64
	ServiceID int64
}

// Response модель ответа: идентификаторы запрошенных и подтвержденных услуг
type Response struct {
	PackageID int64
	Services  []int64
	Accepted  []int64
}
