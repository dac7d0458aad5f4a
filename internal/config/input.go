package config

import (
	"fmt"
	"os"
	"time"

	"github.com/fundsim/fund-simulator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Scenario is the on-disk description of one simulation run. Horizon may be
// given in months or years (months wins when both are set). Severities are
// free-form strings here and parsed strictly when converting to parameters.
type Scenario struct {
	Name              string          `yaml:"name"`
	HorizonMonths     int             `yaml:"horizon_months"`
	HorizonYears      int             `yaml:"horizon_years"`
	MonthlyDeposit    decimal.Decimal `yaml:"monthly_deposit"`
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate_percent"`
	TariffSeverity    string          `yaml:"tariff_severity"`
	ExtremeSeverity   string          `yaml:"extreme_severity"`

	// StartDate anchors the series; left empty, callers substitute "now".
	StartDate *time.Time `yaml:"start_date"`

	// ExtraEvents are additional shocks beyond the two named ones.
	ExtraEvents []ShockEventSpec `yaml:"extra_events"`

	// Catalogs optionally overrides the built-in shock catalogs.
	Catalogs *CatalogsSpec `yaml:"catalogs"`
}

// ShockEventSpec is one extra shock in a scenario file.
type ShockEventSpec struct {
	Label    string          `yaml:"label"`
	Month    int             `yaml:"month"`
	Fraction decimal.Decimal `yaml:"fraction"`
}

// CatalogsSpec overrides the severity catalogs in a scenario file. Omitted
// sections keep their defaults.
type CatalogsSpec struct {
	Tariff  *CatalogSpec `yaml:"tariff"`
	Extreme *CatalogSpec `yaml:"extreme"`
}

// CatalogSpec is one catalog override: fire month plus the three tiers.
type CatalogSpec struct {
	FireMonth int             `yaml:"fire_month"`
	Low       decimal.Decimal `yaml:"low"`
	Medium    decimal.Decimal `yaml:"medium"`
	High      decimal.Decimal `yaml:"high"`
}

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}

	return &scenario, nil
}

// ValidateScenario validates the loaded scenario
func (ip *InputParser) ValidateScenario(scenario *Scenario) error {
	if scenario.HorizonMonths <= 0 && scenario.HorizonYears <= 0 {
		return fmt.Errorf("horizon_months or horizon_years must be positive")
	}
	if scenario.MonthlyDeposit.IsNegative() {
		return fmt.Errorf("monthly deposit cannot be negative")
	}
	if _, err := domain.ParseSeverity(scenario.TariffSeverity); err != nil {
		return fmt.Errorf("tariff_severity: %w", err)
	}
	if _, err := domain.ParseSeverity(scenario.ExtremeSeverity); err != nil {
		return fmt.Errorf("extreme_severity: %w", err)
	}
	one := decimal.NewFromInt(1)
	for i, ev := range scenario.ExtraEvents {
		if ev.Month < 1 {
			return fmt.Errorf("extra_events[%d]: month must be at least 1", i)
		}
		if !ev.Fraction.IsPositive() || ev.Fraction.GreaterThanOrEqual(one) {
			return fmt.Errorf("extra_events[%d]: fraction must be in (0, 1)", i)
		}
	}
	if scenario.Catalogs != nil {
		if err := validateCatalogSpec("tariff", scenario.Catalogs.Tariff); err != nil {
			return err
		}
		if err := validateCatalogSpec("extreme", scenario.Catalogs.Extreme); err != nil {
			return err
		}
	}
	return nil
}

func validateCatalogSpec(name string, spec *CatalogSpec) error {
	if spec == nil {
		return nil
	}
	if spec.FireMonth < 1 {
		return fmt.Errorf("catalogs.%s: fire_month must be at least 1", name)
	}
	one := decimal.NewFromInt(1)
	for tier, f := range map[string]decimal.Decimal{"low": spec.Low, "medium": spec.Medium, "high": spec.High} {
		if f.IsNegative() || f.GreaterThanOrEqual(one) {
			return fmt.Errorf("catalogs.%s.%s: fraction must be in [0, 1)", name, tier)
		}
	}
	return nil
}

// ToParameters converts a validated scenario into engine parameters. The
// now argument is used only when the scenario omits start_date.
func (s *Scenario) ToParameters(now time.Time) (domain.SimulationParameters, error) {
	tariff, err := domain.ParseSeverity(s.TariffSeverity)
	if err != nil {
		return domain.SimulationParameters{}, err
	}
	extreme, err := domain.ParseSeverity(s.ExtremeSeverity)
	if err != nil {
		return domain.SimulationParameters{}, err
	}

	horizon := s.HorizonMonths
	if horizon <= 0 {
		horizon = s.HorizonYears * 12
	}

	start := now
	if s.StartDate != nil && !s.StartDate.IsZero() {
		start = *s.StartDate
	}

	params := domain.SimulationParameters{
		StartDate:         start,
		HorizonMonths:     horizon,
		MonthlyDeposit:    s.MonthlyDeposit,
		AnnualRatePercent: s.AnnualRatePercent,
		TariffSeverity:    tariff,
		ExtremeSeverity:   extreme,
	}
	for _, ev := range s.ExtraEvents {
		params.ExtraEvents = append(params.ExtraEvents, domain.ShockEvent{
			Label:    ev.Label,
			Month:    ev.Month,
			Fraction: ev.Fraction,
		})
	}
	return params, nil
}

// ShockCatalogs builds the engine catalogs, applying any overrides from the
// scenario file on top of the defaults.
func (s *Scenario) ShockCatalogs() domain.ShockCatalogs {
	catalogs := domain.DefaultCatalogs()
	if s.Catalogs == nil {
		return catalogs
	}
	if spec := s.Catalogs.Tariff; spec != nil {
		catalogs.Tariff = spec.toCatalog()
	}
	if spec := s.Catalogs.Extreme; spec != nil {
		catalogs.Extreme = spec.toCatalog()
	}
	return catalogs
}

func (cs *CatalogSpec) toCatalog() domain.ShockCatalog {
	return domain.ShockCatalog{
		FireMonth: cs.FireMonth,
		Fractions: map[domain.Severity]decimal.Decimal{
			domain.SeverityLow:    cs.Low,
			domain.SeverityMedium: cs.Medium,
			domain.SeverityHigh:   cs.High,
		},
	}
}

// CreateExampleScenario creates an example scenario with both shocks enabled
func (ip *InputParser) CreateExampleScenario() *Scenario {
	return &Scenario{
		Name:              "Five Year Plan",
		HorizonYears:      5,
		MonthlyDeposit:    decimal.NewFromInt(500),
		AnnualRatePercent: decimal.NewFromInt(6),
		TariffSeverity:    "medium",
		ExtremeSeverity:   "low",
	}
}

// WriteExampleFile writes the example scenario as YAML to the given path
func (ip *InputParser) WriteExampleFile(filename string) error {
	data, err := yaml.Marshal(ip.CreateExampleScenario())
	if err != nil {
		return fmt.Errorf("failed to marshal example scenario: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
