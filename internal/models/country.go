// models содержит доменные типы risk-sense: профиль страны, новости,
// AI-рекомендации, проекты и справочные записи. JSON-теги повторяют
// формат, который ожидает фронтенд дашборда (camelCase).
package models

// CountryOption — элемент выпадающего списка стран.
type CountryOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Country — метаданные страны от провайдера экономических данных.
type Country struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	RegionID      string `json:"regionId"`
	Region        string `json:"region"`
	IncomeLevelID string `json:"incomeLevelId"`
	IncomeLevel   string `json:"incomeLevel"`
	Capital       string `json:"capital"`
	Longitude     string `json:"longitude"`
	Latitude      string `json:"latitude"`
}

// Direction — направление изменения индикатора.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionNone Direction = "none"
)

// Change — изменение индикатора относительно предыдущего периода.
type Change struct {
	Value     string    `json:"value"`
	Direction Direction `json:"direction"`
}

// EconomicIndicator — отформатированный индикатор для вкладки Economic.
type EconomicIndicator struct {
	Indicator  string `json:"indicator"`
	Value      string `json:"value"`
	Year       string `json:"year"`
	Change     Change `json:"change"`
	GlobalRank string `json:"globalRank,omitempty"`
}

// CountryProfile — контекст страны для одного запроса.
//
// Числовые значения уже отформатированы; отсутствующие данные
// представлены строкой "N/A", а не null.
type CountryProfile struct {
	Name           string              `json:"name"`
	Code           string              `json:"code"`
	Region         string              `json:"region"`
	IncomeLevel    string              `json:"incomeLevel"`
	Capital        string              `json:"capital"`
	Longitude      string              `json:"longitude"`
	Latitude       string              `json:"latitude"`
	Population     string              `json:"population"`
	PopulationYear string              `json:"populationYear"`
	GDP            string              `json:"gdp"`
	GDPPerCapita   string              `json:"gdpPerCapita"`
	Government     string              `json:"government"`
	Indicators     []EconomicIndicator `json:"indicators"`
	Summary        []string            `json:"summary"`
	Analysis       []string            `json:"analysis"`
	// GDPGrowth — последний известный рост ВВП (%), если запрашивались индикаторы.
	GDPGrowth *float64 `json:"gdpGrowth,omitempty"`
}

// ChartPoint — точка временного ряда для графиков; Value == nil, если период пуст.
type ChartPoint struct {
	Name  string   `json:"name"`
	Value *float64 `json:"value"`
}

// ComparisonPoint — значение индикатора страны и среднее по региону.
type ComparisonPoint struct {
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Average float64 `json:"average"`
}
