package models

// RenewableTarget — запись CDP о городской цели по возобновляемой энергетике.
type RenewableTarget struct {
	Country                 string `json:"country"`
	City                    string `json:"city"`
	OrganizationName        string `json:"organization_name"`
	TargetSector            string `json:"target_sector"`
	TargetType              string `json:"target_type"`
	TargetYear              string `json:"target_year,omitempty"`
	BaseYear                string `json:"base_year,omitempty"`
	PercentageOfTotalEnergy string `json:"percentage_of_total_energy,omitempty"`
	MetricUsedToMeasure     string `json:"metric_used_to_measure_target,omitempty"`
	MetricValueInTargetYear string `json:"metric_value_in_target,omitempty"`
	MetricValueInMostRecent string `json:"metric_value_in_most_recent,omitempty"`
	Population              string `json:"population,omitempty"`
	PopulationYear          string `json:"population_year,omitempty"`
}

// RenewableSummary — агрегат по целям страны. При HasData == false
// заполняется только Message.
type RenewableSummary struct {
	HasData                    bool     `json:"hasData"`
	Message                    string   `json:"message,omitempty"`
	CountryName                string   `json:"countryName,omitempty"`
	CitiesWithTargets          int      `json:"citiesWithTargets,omitempty"`
	CityList                   []string `json:"cityList,omitempty"`
	TotalTargets               int      `json:"totalTargets,omitempty"`
	AverageTargetYear          *int     `json:"averageTargetYear,omitempty"`
	AverageRenewablePercentage *int     `json:"averageRenewablePercentage,omitempty"`
	TargetTypes                []string `json:"targetTypes,omitempty"`
}
