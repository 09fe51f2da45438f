package domain

// CurrentConditions descreve o tempo observado agora em uma coordenada.
type CurrentConditions struct {
	Temperature   float64 `json:"temperature"`
	FeelsLike     float64 `json:"feels_like"`
	WindSpeed     float64 `json:"wind_speed"`
	Humidity      int     `json:"humidity"`
	ConditionCode int     `json:"condition_code"`
}

// DailyForecast descreve a previsão agregada de um dia.
type DailyForecast struct {
	Date          string  `json:"date"`
	MinTemp       float64 `json:"min_temp"`
	MaxTemp       float64 `json:"max_temp"`
	Precipitation float64 `json:"precipitation"`
	ConditionCode int     `json:"condition_code"`
}

// ForecastReport agrega as condições atuais e os próximos dias para uma cidade.
type ForecastReport struct {
	City    City              `json:"city"`
	Current CurrentConditions `json:"current"`
	Daily   []DailyForecast   `json:"daily"`
}
