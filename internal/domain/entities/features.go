package entities

// FeatureSet is the structured input the pricing oracle prices against.
//
// Collected during the first wizard step; read-only afterwards. Editing any
// field after a recommendation exists invalidates that recommendation.

type Industry string

const (
	IndustryWebDevelopment    Industry = "web_development"
	IndustryMobileDevelopment Industry = "mobile_development"
	IndustryDesign            Industry = "design"
	IndustryMarketing         Industry = "marketing"
	IndustryConsulting        Industry = "consulting"
	IndustryWriting           Industry = "writing"
	IndustryData              Industry = "data"
	IndustryOther             Industry = "other"
)

func (i Industry) Valid() bool {
	switch i {
	case IndustryWebDevelopment, IndustryMobileDevelopment, IndustryDesign,
		IndustryMarketing, IndustryConsulting, IndustryWriting, IndustryData, IndustryOther:
		return true
	}
	return false
}

type Location string

const (
	LocationGauteng      Location = "gauteng"
	LocationWesternCape  Location = "western_cape"
	LocationKwaZuluNatal Location = "kwazulu_natal"
	LocationEasternCape  Location = "eastern_cape"
	LocationFreeState    Location = "free_state"
	LocationLimpopo      Location = "limpopo"
	LocationMpumalanga   Location = "mpumalanga"
	LocationNorthWest    Location = "north_west"
	LocationNorthernCape Location = "northern_cape"
	LocationRemote       Location = "remote"
)

func (l Location) Valid() bool {
	switch l {
	case LocationGauteng, LocationWesternCape, LocationKwaZuluNatal, LocationEasternCape,
		LocationFreeState, LocationLimpopo, LocationMpumalanga, LocationNorthWest,
		LocationNorthernCape, LocationRemote:
		return true
	}
	return false
}

type ExperienceLevel string

const (
	ExperienceJunior ExperienceLevel = "junior"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
)

func (e ExperienceLevel) Valid() bool {
	switch e {
	case ExperienceJunior, ExperienceMid, ExperienceSenior:
		return true
	}
	return false
}

type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityStandard Complexity = "standard"
	ComplexityComplex  Complexity = "complex"
	ComplexityExpert   Complexity = "expert"
)

func (c Complexity) Valid() bool {
	switch c {
	case ComplexitySimple, ComplexityStandard, ComplexityComplex, ComplexityExpert:
		return true
	}
	return false
}

type FeatureSet struct {
	Industry        Industry        `json:"industry"`
	Location        Location        `json:"location"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	Complexity      Complexity      `json:"complexity"`
	DurationHours   float64         `json:"duration_hours"`
	JobTitle        string          `json:"job_title"`
}

// PricingRecommendation is the oracle's advisory output. It is produced at
// most once per feature set and replaced wholesale, never mutated in place.
type PricingRecommendation struct {
	MinPrice   float64 `json:"min_price"`
	MaxPrice   float64 `json:"max_price"`
	Confidence float64 `json:"confidence"`
	Rationale  string  `json:"rationale"`
}
