// Package domain defines the record shapes, enumerated value sets, and the
// validation result contract shared by herdcore validators and their callers.
package domain

import "time"

// AnimalType classifies an individual animal record.
type AnimalType string

// Supported animal type identifiers.
const (
	AnimalCow    AnimalType = "cow"
	AnimalBull   AnimalType = "bull"
	AnimalCalf   AnimalType = "calf"
	AnimalHeifer AnimalType = "heifer"
	AnimalSteer  AnimalType = "steer"
	AnimalOx     AnimalType = "ox"
)

// KnownAnimalTypes enumerates the closed animal type set.
var KnownAnimalTypes = map[AnimalType]struct{}{
	AnimalCow:    {},
	AnimalBull:   {},
	AnimalCalf:   {},
	AnimalHeifer: {},
	AnimalSteer:  {},
	AnimalOx:     {},
}

// Breed identifies a recognised cattle breed.
type Breed string

// Recognised breeds accepted on cattle records.
const (
	BreedHolstein  Breed = "holstein"
	BreedAngus     Breed = "angus"
	BreedHereford  Breed = "hereford"
	BreedJersey    Breed = "jersey"
	BreedGuernsey  Breed = "guernsey"
	BreedAyrshire  Breed = "ayrshire"
	BreedLimousin  Breed = "limousin"
	BreedSimmental Breed = "simmental"
	BreedCharolais Breed = "charolais"
	BreedBrahman   Breed = "brahman"
	BreedShorthorn Breed = "shorthorn"
	BreedMixed     Breed = "mixed"
)

// KnownBreeds enumerates the closed breed set.
var KnownBreeds = map[Breed]struct{}{
	BreedHolstein:  {},
	BreedAngus:     {},
	BreedHereford:  {},
	BreedJersey:    {},
	BreedGuernsey:  {},
	BreedAyrshire:  {},
	BreedLimousin:  {},
	BreedSimmental: {},
	BreedCharolais: {},
	BreedBrahman:   {},
	BreedShorthorn: {},
	BreedMixed:     {},
}

// HealthStatus captures the recorded condition of an animal.
type HealthStatus string

// Canonical health statuses.
const (
	HealthHealthy     HealthStatus = "healthy"
	HealthSick        HealthStatus = "sick"
	HealthRecovering  HealthStatus = "recovering"
	HealthQuarantined HealthStatus = "quarantined"
	HealthDeceased    HealthStatus = "deceased"
)

// KnownHealthStatuses enumerates the closed health status set.
var KnownHealthStatuses = map[HealthStatus]struct{}{
	HealthHealthy:     {},
	HealthSick:        {},
	HealthRecovering:  {},
	HealthQuarantined: {},
	HealthDeceased:    {},
}

// EventType discriminates health event records and selects which payload
// validation applies.
type EventType string

// Canonical event types. Vaccination, illness, and treatment events carry a
// typed payload; checkup and other do not.
const (
	EventVaccination EventType = "vaccination"
	EventIllness     EventType = "illness"
	EventTreatment   EventType = "treatment"
	EventCheckup     EventType = "checkup"
	EventOther       EventType = "other"
)

// KnownEventTypes enumerates the closed event type set.
var KnownEventTypes = map[EventType]struct{}{
	EventVaccination: {},
	EventIllness:     {},
	EventTreatment:   {},
	EventCheckup:     {},
	EventOther:       {},
}

// VaccineType identifies a vaccine administered in a vaccination event.
type VaccineType string

// Recognised vaccine types.
const (
	VaccineFootAndMouth VaccineType = "foot_and_mouth"
	VaccineBrucellosis  VaccineType = "brucellosis"
	VaccineAnthrax      VaccineType = "anthrax"
	VaccineBlackleg     VaccineType = "blackleg"
	VaccineIBR          VaccineType = "ibr"
	VaccineBVD          VaccineType = "bvd"
	VaccineRabies       VaccineType = "rabies"
	VaccineClostridial  VaccineType = "clostridial"
)

// KnownVaccineTypes enumerates the closed vaccine type set.
var KnownVaccineTypes = map[VaccineType]struct{}{
	VaccineFootAndMouth: {},
	VaccineBrucellosis:  {},
	VaccineAnthrax:      {},
	VaccineBlackleg:     {},
	VaccineIBR:          {},
	VaccineBVD:          {},
	VaccineRabies:       {},
	VaccineClostridial:  {},
}

// IllnessSeverity grades an illness event.
type IllnessSeverity string

// Canonical illness severities.
const (
	SeverityMild     IllnessSeverity = "mild"
	SeverityModerate IllnessSeverity = "moderate"
	SeveritySevere   IllnessSeverity = "severe"
	SeverityCritical IllnessSeverity = "critical"
)

// KnownIllnessSeverities enumerates the closed severity set.
var KnownIllnessSeverities = map[IllnessSeverity]struct{}{
	SeverityMild:     {},
	SeverityModerate: {},
	SeveritySevere:   {},
	SeverityCritical: {},
}

// TreatmentStatus tracks the lifecycle of a treatment event.
type TreatmentStatus string

// Canonical treatment statuses.
const (
	TreatmentPlanned      TreatmentStatus = "planned"
	TreatmentInProgress   TreatmentStatus = "in_progress"
	TreatmentCompleted    TreatmentStatus = "completed"
	TreatmentDiscontinued TreatmentStatus = "discontinued"
)

// KnownTreatmentStatuses enumerates the closed treatment status set.
var KnownTreatmentStatuses = map[TreatmentStatus]struct{}{
	TreatmentPlanned:      {},
	TreatmentInProgress:   {},
	TreatmentCompleted:    {},
	TreatmentDiscontinued: {},
}

// UserRole identifies the permission tier of a user account.
type UserRole string

// Canonical user roles.
const (
	RoleAdmin        UserRole = "admin"
	RoleManager      UserRole = "manager"
	RoleVeterinarian UserRole = "veterinarian"
	RoleWorker       UserRole = "worker"
	RoleViewer       UserRole = "viewer"
)

// KnownUserRoles enumerates the closed role set.
var KnownUserRoles = map[UserRole]struct{}{
	RoleAdmin:        {},
	RoleManager:      {},
	RoleVeterinarian: {},
	RoleWorker:       {},
	RoleViewer:       {},
}

// UserStatus captures account availability.
type UserStatus string

// Canonical user statuses.
const (
	UserActive    UserStatus = "active"
	UserInactive  UserStatus = "inactive"
	UserSuspended UserStatus = "suspended"
)

// KnownUserStatuses enumerates the closed user status set.
var KnownUserStatuses = map[UserStatus]struct{}{
	UserActive:    {},
	UserInactive:  {},
	UserSuspended: {},
}

// FileKind declares the purpose of an uploaded file and selects the mimetype
// allow-list applied to it.
type FileKind string

// Supported upload purposes.
const (
	FileImage    FileKind = "image"
	FileDocument FileKind = "document"
)

// KnownFileKinds enumerates the closed file kind set.
var KnownFileKinds = map[FileKind]struct{}{
	FileImage:    {},
	FileDocument: {},
}

// CattleRecord is a candidate animal record submitted for create or update.
// Optional scalar fields are pointers so that absence and zero values stay
// distinguishable after decoding.
type CattleRecord struct {
	Tag          string       `json:"tag"`
	Type         AnimalType   `json:"type"`
	Breed        Breed        `json:"breed"`
	BirthDate    string       `json:"birth_date"`
	Name         *string      `json:"name,omitempty"`
	WeightKg     *float64     `json:"weight_kg,omitempty"`
	HealthStatus HealthStatus `json:"health_status,omitempty"`
	Latitude     *float64     `json:"latitude,omitempty"`
	Longitude    *float64     `json:"longitude,omitempty"`
	MotherID     *int64       `json:"mother_id,omitempty"`
	FatherID     *int64       `json:"father_id,omitempty"`
	FarmID       *int64       `json:"farm_id,omitempty"`
}

// VaccinationDetails is the payload carried by vaccination events.
type VaccinationDetails struct {
	VaccineType VaccineType `json:"vaccine_type"`
	Dosage      *float64    `json:"dosage,omitempty"`
	NextDueDate string      `json:"next_due_date,omitempty"`
}

// IllnessDetails is the payload carried by illness events.
type IllnessDetails struct {
	Severity IllnessSeverity `json:"severity,omitempty"`
}

// TreatmentDetails is the payload carried by treatment events.
type TreatmentDetails struct {
	Status      TreatmentStatus `json:"status,omitempty"`
	Medications []string        `json:"medications,omitempty"`
}

// EventRecord is a candidate health event. Exactly the payload matching Type
// may be populated; validators reject payloads attached to the wrong type.
type EventRecord struct {
	CattleID       int64               `json:"cattle_id"`
	Type           EventType           `json:"type"`
	EventDate      string              `json:"event_date"`
	Description    string              `json:"description"`
	Vaccination    *VaccinationDetails `json:"vaccination,omitempty"`
	Illness        *IllnessDetails     `json:"illness,omitempty"`
	Treatment      *TreatmentDetails   `json:"treatment,omitempty"`
	VeterinarianID *int64              `json:"veterinarian_id,omitempty"`
	Notes          *string             `json:"notes,omitempty"`
	Cost           *float64            `json:"cost,omitempty"`
	Latitude       *float64            `json:"latitude,omitempty"`
	Longitude      *float64            `json:"longitude,omitempty"`
}

// UserRecord is a candidate user account.
type UserRecord struct {
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Password  string     `json:"password"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Role      UserRole   `json:"role"`
	Phone     *string    `json:"phone,omitempty"`
	Status    UserStatus `json:"status,omitempty"`
}

// LocationFix is a reported geolocation reading for an animal or device.
type LocationFix struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
	Timestamp string   `json:"timestamp,omitempty"`
}

// FileUpload is the metadata of an uploaded file; the engine never sees file
// contents.
type FileUpload struct {
	OriginalName string `json:"original_name"`
	Mimetype     string `json:"mimetype"`
	SizeBytes    int64  `json:"size_bytes"`
}

// DateRange bounds a report or listing query.
type DateRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// PageRequest carries pagination parameters for list lookups.
type PageRequest struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Page is a normalized pagination window derived from a PageRequest.
type Page struct {
	Page   int `json:"page"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// dateLayouts are the accepted textual date encodings, tried in order.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate parses a record date field. Plain dates are interpreted at
// midnight UTC.
func ParseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
