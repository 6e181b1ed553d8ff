package domain

// Categorical fields are closed sets of canonical strings. The zero value ("")
// means the field was not supplied and is stored as NULL.

// canonical returns a pointer to the stored representation of v, or nil when v is empty.
func canonical(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// ============================================================================
// Title
// ============================================================================

type Title string

const (
	TitleMr   Title = "Mr"
	TitleMrs  Title = "Mrs"
	TitleMiss Title = "Miss"
	TitleDr   Title = "Dr"
)

// ValidTitleValues returns all valid titles
func ValidTitleValues() []Title {
	return []Title{TitleMr, TitleMrs, TitleMiss, TitleDr}
}

// IsValid checks if the title is one of the canonical values
func (t Title) IsValid() bool {
	for _, valid := range ValidTitleValues() {
		if t == valid {
			return true
		}
	}
	return false
}

// Canonical returns the value to persist (nil when absent)
func (t Title) Canonical() *string { return canonical(string(t)) }

// ============================================================================
// Marital Status
// ============================================================================

type MaritalStatus string

const (
	MaritalSingle    MaritalStatus = "Single"
	MaritalMarried   MaritalStatus = "Married"
	MaritalDivorced  MaritalStatus = "Divorced"
	MaritalWidowed   MaritalStatus = "Widowed"
	MaritalSeparated MaritalStatus = "Separated"
)

func ValidMaritalStatusValues() []MaritalStatus {
	return []MaritalStatus{MaritalSingle, MaritalMarried, MaritalDivorced, MaritalWidowed, MaritalSeparated}
}

func (m MaritalStatus) IsValid() bool {
	for _, valid := range ValidMaritalStatusValues() {
		if m == valid {
			return true
		}
	}
	return false
}

func (m MaritalStatus) Canonical() *string { return canonical(string(m)) }

// ============================================================================
// Degree Type (Education)
// ============================================================================

type DegreeType string

const (
	DegreeBachelor    DegreeType = "Bachelor's Degree"
	DegreeMaster      DegreeType = "Master's Degree"
	DegreePhD         DegreeType = "PhD"
	DegreeDiploma     DegreeType = "Diploma"
	DegreeCertificate DegreeType = "Certificate"
	DegreeAssociate   DegreeType = "Associate Degree"
)

func ValidDegreeTypeValues() []DegreeType {
	return []DegreeType{DegreeBachelor, DegreeMaster, DegreePhD, DegreeDiploma, DegreeCertificate, DegreeAssociate}
}

func (d DegreeType) IsValid() bool {
	for _, valid := range ValidDegreeTypeValues() {
		if d == valid {
			return true
		}
	}
	return false
}

func (d DegreeType) Canonical() *string { return canonical(string(d)) }

// ============================================================================
// Skill Level
// ============================================================================

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillAdvanced     SkillLevel = "Advanced"
	SkillExpert       SkillLevel = "Expert"
)

func ValidSkillLevelValues() []SkillLevel {
	return []SkillLevel{SkillBeginner, SkillIntermediate, SkillAdvanced, SkillExpert}
}

func (s SkillLevel) IsValid() bool {
	for _, valid := range ValidSkillLevelValues() {
		if s == valid {
			return true
		}
	}
	return false
}

func (s SkillLevel) Canonical() *string { return canonical(string(s)) }

// ============================================================================
// Proficiency Level (Language)
// ============================================================================

type ProficiencyLevel string

const (
	ProficiencyBasic          ProficiencyLevel = "Basic"
	ProficiencyConversational ProficiencyLevel = "Conversational"
	ProficiencyFluent         ProficiencyLevel = "Fluent"
	ProficiencyNative         ProficiencyLevel = "Native"
)

func ValidProficiencyLevelValues() []ProficiencyLevel {
	return []ProficiencyLevel{ProficiencyBasic, ProficiencyConversational, ProficiencyFluent, ProficiencyNative}
}

func (p ProficiencyLevel) IsValid() bool {
	for _, valid := range ValidProficiencyLevelValues() {
		if p == valid {
			return true
		}
	}
	return false
}

func (p ProficiencyLevel) Canonical() *string { return canonical(string(p)) }

// ============================================================================
// Work Type
// ============================================================================

type WorkType string

const (
	WorkRemote WorkType = "Remote"
	WorkOnsite WorkType = "On-site"
	WorkHybrid WorkType = "Hybrid"
	WorkAny    WorkType = "Any"
)

func ValidWorkTypeValues() []WorkType {
	return []WorkType{WorkRemote, WorkOnsite, WorkHybrid, WorkAny}
}

func (w WorkType) IsValid() bool {
	for _, valid := range ValidWorkTypeValues() {
		if w == valid {
			return true
		}
	}
	return false
}

func (w WorkType) Canonical() *string { return canonical(string(w)) }
