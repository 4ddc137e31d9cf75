package report

// EntityType is the legal form of an ecosystem entity.
type EntityType string

const (
	Type501c3   EntityType = "501c3"
	Type501c6   EntityType = "501c6"
	TypeLLC     EntityType = "LLC"
	TypeHolding EntityType = "Holding"
	TypeProgram EntityType = "Program"
)

// Status is the operating stage of an entity.
type Status string

const (
	StatusOperational Status = "operational"
	StatusPreLaunch   Status = "pre-launch"
	StatusPlanning    Status = "planning"
)

// Label returns the human readable status. Unknown values read as Planning.
func (s Status) Label() string {
	switch s {
	case StatusOperational:
		return "Operational"
	case StatusPreLaunch:
		return "Pre-Launch"
	default:
		return "Planning"
	}
}

// Entity is one member organization of the consortium.
type Entity struct {
	Slug               string          `json:"slug"`
	Name               string          `json:"name"`
	ShortName          string          `json:"shortName"`
	LegalName          string          `json:"legalName"`
	Type               EntityType      `json:"type"`
	Tagline            string          `json:"tagline"`
	Description        string          `json:"description"`
	Color              string          `json:"color"`
	Icon               string          `json:"icon"`
	Category           string          `json:"category"`
	RevenueY1Floor     float64         `json:"revenueY1Floor"`
	RevenueY1Ceiling   float64         `json:"revenueY1Ceiling"`
	RevenueY5Floor     float64         `json:"revenueY5Floor"`
	RevenueY5Ceiling   float64         `json:"revenueY5Ceiling"`
	Status             Status          `json:"status"`
	Website            *string         `json:"website"`
	TeamSize           int             `json:"teamSize"`
	KeyRoles           []string        `json:"keyRoles"`
	FlywheelRole       string          `json:"flywheelRole"`
	FlywheelConnection string          `json:"flywheelConnection"`
	AIProduct          *AIProduct      `json:"aiProduct,omitempty"`
	RevenueStreams     []RevenueStream `json:"revenueStreams"`
	Metrics            []EntityMetric  `json:"metrics"`
}

// AIProduct describes an entity's AI offering.
type AIProduct struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Pricing     string `json:"pricing"`
}

// RevenueStream is a single line of projected revenue for an entity.
type RevenueStream struct {
	Name        string  `json:"name"`
	EstimatedY1 float64 `json:"estimatedY1"`
	EstimatedY5 float64 `json:"estimatedY5"`
	Status      string  `json:"status"`
	Category    string  `json:"category"`
}

// EntityMetric is a headline number shown on an entity page.
type EntityMetric struct {
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
	Prefix string  `json:"prefix,omitempty"`
	Suffix string  `json:"suffix,omitempty"`
}

// EcosystemMetrics are the consortium-wide headline numbers.
type EcosystemMetrics struct {
	CapitalRaise      float64 `json:"capitalRaise"`
	Entities          int     `json:"entities"`
	CRMAccounts       int     `json:"crmAccounts"`
	RevenueY1Floor    float64 `json:"revenueY1Floor"`
	RevenueY1Ceiling  float64 `json:"revenueY1Ceiling"`
	RevenueY5Floor    float64 `json:"revenueY5Floor"`
	RevenueY5Ceiling  float64 `json:"revenueY5Ceiling"`
	ValuationY1Low    float64 `json:"valuationY1Low"`
	ValuationY1High   float64 `json:"valuationY1High"`
	ValuationY5Low    float64 `json:"valuationY5Low"`
	ValuationY5High   float64 `json:"valuationY5High"`
	Staff             int     `json:"staff"`
	StaffAIEquivalent int     `json:"staffAIEquivalent"`
	CampusAcres       int     `json:"campusAcres"`
	PartnerCities     int     `json:"partnerCities"`
	SprintsCompleted  int     `json:"sprintsCompleted"`
	AgentsDeployed    int     `json:"agentsDeployed"`
	DaysBuilding      int     `json:"daysBuilding"`
}

// Financials holds the aggregate projections and per-entity breakdown.
type Financials struct {
	Aggregate       Aggregate        `json:"aggregate"`
	Pricing         Pricing          `json:"pricing"`
	EntityBreakdown []BreakdownEntry `json:"entityBreakdown"`
}

type Aggregate struct {
	RevenueY1Floor       float64              `json:"revenueY1Floor"`
	RevenueY1Ceiling     float64              `json:"revenueY1Ceiling"`
	RevenueY5Floor       float64              `json:"revenueY5Floor"`
	RevenueY5Ceiling     float64              `json:"revenueY5Ceiling"`
	ValuationY1Low       float64              `json:"valuationY1Low"`
	ValuationY1High      float64              `json:"valuationY1High"`
	ValuationY5Low       float64              `json:"valuationY5Low"`
	ValuationY5High      float64              `json:"valuationY5High"`
	CapitalRaise         float64              `json:"capitalRaise"`
	FlywheelPercentage   float64              `json:"flywheelPercentage"`
	FlywheelDistribution FlywheelDistribution `json:"flywheelDistribution"`
}

// FlywheelDistribution is the equity percentage each recipient receives.
type FlywheelDistribution struct {
	AuricLabs      float64 `json:"auricLabs"`
	SeedFoundation float64 `json:"seedFoundation"`
	BHC            float64 `json:"bhc"`
}

// Pricing is the monthly FlowBot price per tier.
type Pricing struct {
	Starter    float64 `json:"starter"`
	Solo       float64 `json:"solo"`
	Growth     float64 `json:"growth"`
	Enterprise float64 `json:"enterprise"`
	MSO        float64 `json:"mso"`
}

type BreakdownEntry struct {
	Slug             string  `json:"slug"`
	Name             string  `json:"name"`
	RevenueY1Floor   float64 `json:"revenueY1Floor"`
	RevenueY1Ceiling float64 `json:"revenueY1Ceiling"`
	RevenueY5Floor   float64 `json:"revenueY5Floor"`
	RevenueY5Ceiling float64 `json:"revenueY5Ceiling"`
	ShareOfY1Floor   float64 `json:"shareOfY1Floor"`
}

// Flywheel describes the value flow between entities.
type Flywheel struct {
	Source      string               `json:"source"`
	EquityBase  float64              `json:"equityBase"`
	Percentage  float64              `json:"percentage"`
	Nodes       []FlywheelNode       `json:"nodes"`
	Connections []FlywheelConnection `json:"connections"`
}

// EquityFlow is the amount distributed downstream each year.
func (f Flywheel) EquityFlow() float64 {
	return f.EquityBase * f.Percentage / 100
}

// Node returns the node with the given id.
func (f Flywheel) Node(id string) (FlywheelNode, bool) {
	for _, n := range f.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return FlywheelNode{}, false
}

type FlywheelNode struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Value       string `json:"value"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

type FlywheelConnection struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

// Goal is a tracked five-year milestone.
type Goal struct {
	Label    string  `json:"label"`
	Current  float64 `json:"current"`
	Target   float64 `json:"target"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
	Icon     string  `json:"icon"`
}

// Investors is the capital raise pitch.
type Investors struct {
	CapitalRaise      float64           `json:"capitalRaise"`
	Thesis            []string          `json:"thesis"`
	UseOfFunds        []FundUse         `json:"useOfFunds"`
	Tiers             []InvestorTier    `json:"tiers"`
	ReturnProjections ReturnProjections `json:"returnProjections"`
}

type FundUse struct {
	Category   string  `json:"category"`
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
}

type InvestorTier struct {
	Name     string   `json:"name"`
	Range    string   `json:"range"`
	Benefits []string `json:"benefits"`
	Color    string   `json:"color"`
}

type ReturnProjections struct {
	ValuationY1Low  float64 `json:"valuationY1Low"`
	ValuationY1High float64 `json:"valuationY1High"`
	ValuationY5Low  float64 `json:"valuationY5Low"`
	ValuationY5High float64 `json:"valuationY5High"`
	RevenueMultiple string  `json:"revenueMultiple"`
}

// Team describes consortium staffing.
type Team struct {
	Staff            int              `json:"staff"`
	AIEquivalent     int              `json:"aiEquivalent"`
	AIMultiplier     float64          `json:"aiMultiplier"`
	Departments      []Department     `json:"departments"`
	Benefits         []Benefit        `json:"benefits"`
	FullyLoadedCosts FullyLoadedCosts `json:"fullyLoadedCosts"`
}

type Department struct {
	Name      string `json:"name"`
	Headcount int    `json:"headcount"`
	Color     string `json:"color"`
}

type Benefit struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// FullyLoadedCosts are annual per-head costs in dollars.
type FullyLoadedCosts struct {
	Technical  float64 `json:"technical"`
	FieldSales float64 `json:"fieldSales"`
	Executive  float64 `json:"executive"`
}

// Winner identifies which side of a comparison row comes out ahead.
type Winner string

const (
	WinnerBHC        Winner = "bhc"
	WinnerCompetitor Winner = "competitor"
	WinnerEqual      Winner = "equal"
)

// Comparison is a head-to-head against another regional organization.
type Comparison struct {
	CompetitorName string      `json:"competitorName"`
	DisplayName    string      `json:"displayName,omitempty"`
	CompetitorType string      `json:"competitorType"`
	DataPoints     []DataPoint `json:"dataPoints"`
	Summary        string      `json:"summary"`
}

// Title is the short competitor name used in headings.
func (c Comparison) Title() string {
	if c.DisplayName != "" {
		return c.DisplayName
	}
	return c.CompetitorName
}

type DataPoint struct {
	Metric          string `json:"metric"`
	BHCValue        string `json:"bhcValue"`
	CompetitorValue string `json:"competitorValue"`
	Winner          Winner `json:"winner"`
	Note            string `json:"note,omitempty"`
}

func (p DataPoint) MetricName() string { return p.Metric }
func (p DataPoint) NoteText() string   { return p.Note }
