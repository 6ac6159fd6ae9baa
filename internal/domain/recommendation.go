package domain

// Recommendation is a derived pairing of a service with a fit score for one guest.
// ID equals the catalog service id when the suggestion matched the catalog;
// synthesized suggestions get negative ids so they never collide with catalog ids.
type Recommendation struct {
	ID          int64
	ServiceID   *int64
	Title       string
	Description string
	Price       float64
	ImagePath   string
	Score       int // 0-100
}

// IsFromCatalog returns true if the recommendation was matched to a catalog service
func (r *Recommendation) IsFromCatalog() bool {
	return r.ServiceID != nil
}

// Bundle is a ranked group of recommendations offered together
type Bundle struct {
	ID          string
	Name        string
	Description string
	Price       float64
	ItemIDs     []int64
	Confidence  float64 // 0-1, static per bundle kind
}

// HistoricalRecord is a flattened past booking sent to the predictor as context
type HistoricalRecord struct {
	Nationality string
	City        string
	AgeGender   string
	Group       string
	Duration    int
	RoomType    string
	Services    []string
}

// PredictionProfile is the current traveler profile sent to the predictor
type PredictionProfile struct {
	Nationality string
	City        string
	AgeGender   string
	Group       string
	Duration    int
	RoomType    string
}

// Age returns the age part of AgeGender
func (p PredictionProfile) Age() string {
	age, _ := SplitAgeGender(p.AgeGender)
	return age
}

// Gender returns the gender letter of AgeGender
func (p PredictionProfile) Gender() string {
	_, gender := SplitAgeGender(p.AgeGender)
	return gender
}
