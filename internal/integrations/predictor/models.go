package predictor

// Request тело запроса к сервису прогнозов
type Request struct {
	Old     []HistoricalRecord `json:"old"`
	NewData NewData            `json:"newData"`
}

// HistoricalRecord прошлое бронирование в формате сервиса прогнозов
type HistoricalRecord struct {
	Nationality string   `json:"nationality"`
	City        string   `json:"city"`
	AgeGender   string   `json:"age_gender"`
	Group       string   `json:"group"`
	Duration    int      `json:"duration,string"`
	RoomType    string   `json:"room_type"`
	Services    []string `json:"services"`
}

// NewData профиль текущего путешественника
type NewData struct {
	Nationality string `json:"nationality"`
	City        string `json:"city"`
	Age         string `json:"age"`
	Gender      string `json:"gender"`
	Group       string `json:"group"`
	Duration    int    `json:"duration,string"`
	RoomType    string `json:"room_type"`
}

// Response ответ сервиса прогнозов. Поле services приходит в разных формах
type Response struct {
	Services Suggestions `json:"services"`
}
