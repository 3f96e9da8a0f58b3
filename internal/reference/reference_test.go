package reference

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/risk-sense/internal/models"
)

func TestLoad_EmbeddedData(t *testing.T) {
	t.Parallel()

	ds, err := Load()
	require.NoError(t, err)

	aus := ds.ProjectsFor("aus")
	require.Len(t, aus, 4)
	require.Equal(t, "aus-001", aus[0].ID)
	require.Equal(t, "Sydney Renewable Energy Grid Upgrade", aus[0].Name)
	require.Equal(t, models.SectorEnergy, aus[0].Sector)
	require.Equal(t, models.RiskLow, aus[0].CurrentRisk)
	require.Equal(t, "AUS", aus[0].Country)
	require.NotNil(t, aus[1].PreviousRisk)
	require.Equal(t, models.RiskLow, *aus[1].PreviousRisk)

	require.Len(t, ds.ProjectsFor("IND"), 3)
	require.Len(t, ds.ProjectsFor("USA"), 3)

	name, ok := ds.CDPCountryName("gbr")
	require.True(t, ok)
	require.Equal(t, "United Kingdom of Great Britain and Northern Ireland", name)
	_, ok = ds.CDPCountryName("NOR")
	require.False(t, ok)

	r, ok := ds.CreditRating("USA")
	require.True(t, ok)
	require.Equal(t, "AA+", r.Rating)

	d, ok := ds.DisasterRisk("JPN")
	require.True(t, ok)
	require.NotNil(t, d.WRIRank)
	require.Equal(t, 37, *d.WRIRank)
	require.Equal(t, "Very High", DisasterRiskLevel(d.WRIRank))

	nib := ds.NIB()
	require.Equal(t, "Our Year in Brief", nib.YearInBrief.Title)
	require.Len(t, nib.YearInBrief.KeyHighlights, 3)
	require.Equal(t, "EUR 5.6 billion", nib.YearInBrief.KeyHighlights[0].Value)
	require.Len(t, nib.YearInBrief.FactSheets, 3)
	require.Len(t, nib.QuickLinks, 4)
}

func TestProjectsFor_DefaultPortfolioRenamed(t *testing.T) {
	t.Parallel()

	ds, err := Load()
	require.NoError(t, err)

	got := ds.ProjectsFor(" nor ")
	require.Len(t, got, 2)
	require.Equal(t, "nor-default-001", got[0].ID)
	require.Equal(t, "Renewable Energy Development (NOR)", got[0].Name)
	require.Equal(t, "NOR", got[0].Country)
	require.Equal(t, models.StatusFunded, got[0].Status)
	require.InDelta(t, 250.0, got[0].Budget, 1e-9)
	require.Equal(t, "nor-default-002", got[1].ID)
	require.Equal(t, models.SectorAgriculture, got[1].Sector)
	require.Equal(t, models.RiskHigh, got[1].CurrentRisk)
}

func TestProjectsFor_ReturnsCopies(t *testing.T) {
	t.Parallel()

	ds, err := Load()
	require.NoError(t, err)

	first := ds.ProjectsFor("AUS")
	first[0].RiskFactors[0] = "mutated"
	first[0].CurrentRisk = models.RiskCritical

	second := ds.ProjectsFor("AUS")
	require.NotEqual(t, "mutated", second[0].RiskFactors[0])
	require.Equal(t, models.RiskLow, second[0].CurrentRisk)

	nib := ds.NIB()
	nib.QuickLinks[0].Title = "mutated"
	require.NotEqual(t, "mutated", ds.NIB().QuickLinks[0].Title)
}

func TestLoadFS_Errors(t *testing.T) {
	t.Parallel()

	_, err := LoadFS(fstest.MapFS{})
	require.Error(t, err)

	broken := fstest.MapFS{
		"data/projects.yaml":       {Data: []byte("projects: [unclosed")},
		"data/credit_ratings.yaml": {Data: []byte("credit_ratings: []")},
		"data/disaster_risk.yaml":  {Data: []byte("disaster_risk: []")},
		"data/cdp_countries.yaml":  {Data: []byte("cdp_countries: {}")},
		"data/nib.yaml":            {Data: []byte("nib: {}")},
	}
	_, err = LoadFS(broken)
	require.ErrorContains(t, err, "projects.yaml")

	noDefault := fstest.MapFS{
		"data/projects.yaml":       {Data: []byte("projects:\n  AUS: []\n")},
		"data/credit_ratings.yaml": {Data: []byte("credit_ratings: []")},
		"data/disaster_risk.yaml":  {Data: []byte("disaster_risk: []")},
		"data/cdp_countries.yaml":  {Data: []byte("cdp_countries: {}")},
		"data/nib.yaml":            {Data: []byte("nib: {}")},
	}
	_, err = LoadFS(noDefault)
	require.ErrorContains(t, err, "DEFAULT")
}

func TestDisasterRiskLevel(t *testing.T) {
	t.Parallel()

	rank := func(v int) *int { return &v }

	require.Equal(t, "Unknown", DisasterRiskLevel(nil))
	require.Equal(t, "Extreme", DisasterRiskLevel(rank(1)))
	require.Equal(t, "Extreme", DisasterRiskLevel(rank(30)))
	require.Equal(t, "Very High", DisasterRiskLevel(rank(60)))
	require.Equal(t, "High", DisasterRiskLevel(rank(90)))
	require.Equal(t, "Medium", DisasterRiskLevel(rank(101)))
	require.Equal(t, "Low", DisasterRiskLevel(rank(150)))
	require.Equal(t, "Very Low", DisasterRiskLevel(rank(151)))
}
