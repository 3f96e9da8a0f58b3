// reference — встроенные справочники: портфель проектов, суверенные
// рейтинги, World Risk Index, названия стран CDP и статика NIB.
//
// Данные читаются один раз при старте; наружу отдаются копии.
package reference

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pribylovaa/risk-sense/internal/models"
)

//go:embed data/*.yaml
var embedded embed.FS

// defaultPortfolio — ключ портфеля для стран без собственных проектов.
const defaultPortfolio = "DEFAULT"

// Dataset — загруженные справочники.
type Dataset struct {
	projects      map[string][]models.Project
	creditRatings map[string]models.CreditRating
	disasterRisk  map[string]models.DisasterRisk
	cdpCountries  map[string]string
	nib           models.NIBBasicInfo
}

type projectsFile struct {
	Projects map[string][]models.Project `yaml:"projects"`
}

type creditRatingsFile struct {
	CreditRatings []models.CreditRating `yaml:"credit_ratings"`
}

type disasterRiskFile struct {
	DisasterRisk []models.DisasterRisk `yaml:"disaster_risk"`
}

type cdpCountriesFile struct {
	CDPCountries map[string]string `yaml:"cdp_countries"`
}

type nibFile struct {
	NIB models.NIBBasicInfo `yaml:"nib"`
}

// Load читает встроенные справочники.
func Load() (*Dataset, error) {
	return LoadFS(embedded)
}

// MustLoad — Load с паникой при ошибке (для main).
func MustLoad() *Dataset {
	ds, err := Load()
	if err != nil {
		panic(err)
	}

	return ds
}

// LoadFS читает справочники из fsys (ожидаются файлы data/*.yaml).
func LoadFS(fsys fs.FS) (*Dataset, error) {
	const op = "reference.LoadFS"

	var (
		pf  projectsFile
		crf creditRatingsFile
		drf disasterRiskFile
		cdf cdpCountriesFile
		nf  nibFile
	)

	files := []struct {
		name string
		dst  any
	}{
		{"data/projects.yaml", &pf},
		{"data/credit_ratings.yaml", &crf},
		{"data/disaster_risk.yaml", &drf},
		{"data/cdp_countries.yaml", &cdf},
		{"data/nib.yaml", &nf},
	}

	for _, f := range files {
		raw, err := fs.ReadFile(fsys, f.name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if err := yaml.Unmarshal(raw, f.dst); err != nil {
			return nil, fmt.Errorf("%s: %s: %w", op, f.name, err)
		}
	}

	if len(pf.Projects[defaultPortfolio]) == 0 {
		return nil, fmt.Errorf("%s: %s portfolio is empty", op, defaultPortfolio)
	}

	ds := &Dataset{
		projects:      make(map[string][]models.Project, len(pf.Projects)),
		creditRatings: make(map[string]models.CreditRating, len(crf.CreditRatings)),
		disasterRisk:  make(map[string]models.DisasterRisk, len(drf.DisasterRisk)),
		cdpCountries:  make(map[string]string, len(cdf.CDPCountries)),
		nib:           nf.NIB,
	}

	for code, list := range pf.Projects {
		ds.projects[normalize(code)] = list
	}
	for _, r := range crf.CreditRatings {
		ds.creditRatings[normalize(r.CountryCode)] = r
	}
	for _, r := range drf.DisasterRisk {
		ds.disasterRisk[normalize(r.CountryCode)] = r
	}
	for code, name := range cdf.CDPCountries {
		ds.cdpCountries[normalize(code)] = name
	}

	return ds, nil
}

// ProjectsFor возвращает копию портфеля страны. Для кода без своих
// проектов берётся DEFAULT: id получает префикс кода, имя — суффикс "(CODE)".
func (d *Dataset) ProjectsFor(code string) []models.Project {
	code = normalize(code)

	if list, ok := d.projects[code]; ok && code != defaultPortfolio {
		out := make([]models.Project, 0, len(list))
		for _, p := range list {
			c := p.Clone()
			c.Country = code
			out = append(out, c)
		}
		return out
	}

	list := d.projects[defaultPortfolio]
	out := make([]models.Project, 0, len(list))
	for _, p := range list {
		c := p.Clone()
		c.ID = strings.ToLower(code) + "-" + p.ID
		c.Name = fmt.Sprintf("%s (%s)", p.Name, code)
		c.Country = code
		out = append(out, c)
	}

	return out
}

// CDPCountryName — название страны в датасете CDP.
func (d *Dataset) CDPCountryName(code string) (string, bool) {
	name, ok := d.cdpCountries[normalize(code)]
	return name, ok
}

// CreditRating — рейтинг S&P, если он есть.
func (d *Dataset) CreditRating(code string) (models.CreditRating, bool) {
	r, ok := d.creditRatings[normalize(code)]
	return r, ok
}

// DisasterRisk — запись World Risk Index, если она есть.
func (d *Dataset) DisasterRisk(code string) (models.DisasterRisk, bool) {
	r, ok := d.disasterRisk[normalize(code)]
	return r, ok
}

// NIB возвращает копию статичной справки NIB.
func (d *Dataset) NIB() models.NIBBasicInfo {
	out := d.nib
	out.YearInBrief.KeyHighlights = append([]models.KeyHighlight(nil), d.nib.YearInBrief.KeyHighlights...)
	out.YearInBrief.FactSheets = append([]models.FactSheet(nil), d.nib.YearInBrief.FactSheets...)
	out.QuickLinks = append([]models.QuickLink(nil), d.nib.QuickLinks...)

	return out
}

// DisasterRiskLevel переводит ранг WRI в качественную шкалу.
func DisasterRiskLevel(rank *int) string {
	if rank == nil || *rank <= 0 {
		return "Unknown"
	}

	switch r := *rank; {
	case r <= 30:
		return "Extreme"
	case r <= 60:
		return "Very High"
	case r <= 90:
		return "High"
	case r <= 120:
		return "Medium"
	case r <= 150:
		return "Low"
	default:
		return "Very Low"
	}
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
