package domain

// UserRole defines the portal's permission classes.
type UserRole string

const (
	RoleClient   UserRole = "client"
	RoleAttorney UserRole = "attorney"
	RoleManager  UserRole = "manager"
	RoleAdmin    UserRole = "admin"
)

// ValidUserRoles is the closed set of accepted roles.
var ValidUserRoles = map[UserRole]bool{
	RoleClient:   true,
	RoleAttorney: true,
	RoleManager:  true,
	RoleAdmin:    true,
}

// Label returns the Spanish display label shown in the portal UI.
func (r UserRole) Label() string {
	switch r {
	case RoleClient:
		return "Cliente"
	case RoleAttorney:
		return "Abogado"
	case RoleManager:
		return "Gerente"
	case RoleAdmin:
		return "Administrador"
	}
	return string(r)
}

// SeesEverything reports whether the role bypasses record-level scoping.
func (r UserRole) SeesEverything() bool {
	return r == RoleManager || r == RoleAdmin
}

// CaseBaseType is the first level of the two-level case taxonomy.
type CaseBaseType string

const (
	BaseTypeAdministrative CaseBaseType = "administrative"
	BaseTypeJudicial       CaseBaseType = "judicial"
)

// ValidCaseBaseTypes is the closed set of base types. The taxonomy is
// fixed; only the subtypes underneath each base type are admin-managed.
var ValidCaseBaseTypes = map[CaseBaseType]bool{
	BaseTypeAdministrative: true,
	BaseTypeJudicial:       true,
}

// Prefix returns the subtype ID prefix for the base type (AD-001, JU-001, ...).
func (t CaseBaseType) Prefix() string {
	switch t {
	case BaseTypeAdministrative:
		return "AD"
	case BaseTypeJudicial:
		return "JU"
	}
	return ""
}

func (t CaseBaseType) Label() string {
	switch t {
	case BaseTypeAdministrative:
		return "Administrativo"
	case BaseTypeJudicial:
		return "Judicial"
	}
	return string(t)
}

// CaseState reports whether a case is open or closed.
type CaseState string

const (
	CaseOpen   CaseState = "open"
	CaseClosed CaseState = "closed"
)

var ValidCaseStates = map[CaseState]bool{
	CaseOpen:   true,
	CaseClosed: true,
}

func (s CaseState) Label() string {
	switch s {
	case CaseOpen:
		return "Abierto"
	case CaseClosed:
		return "Cerrado"
	}
	return string(s)
}

// AppointmentKind is the consultation modality.
type AppointmentKind string

const (
	KindInPerson            AppointmentKind = "in_person"
	KindVideoConference     AppointmentKind = "video_conference"
	KindWrittenConsultation AppointmentKind = "written_consultation"
)

var ValidAppointmentKinds = map[AppointmentKind]bool{
	KindInPerson:            true,
	KindVideoConference:     true,
	KindWrittenConsultation: true,
}

func (k AppointmentKind) Label() string {
	switch k {
	case KindInPerson:
		return "Presencial"
	case KindVideoConference:
		return "Videoconferencia"
	case KindWrittenConsultation:
		return "Consulta Escrita"
	}
	return string(k)
}

// AppointmentStatus is the appointment lifecycle state. Transitions are
// one-way: scheduled -> completed or scheduled -> cancelled.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

func (s AppointmentStatus) Label() string {
	switch s {
	case AppointmentScheduled:
		return "Programada"
	case AppointmentCompleted:
		return "Completada"
	case AppointmentCancelled:
		return "Cancelada"
	}
	return string(s)
}

// DocumentStatus is the e-signature lifecycle state. The only modeled
// transition is awaiting_signature -> signed.
type DocumentStatus string

const (
	DocumentAwaitingSignature DocumentStatus = "awaiting_signature"
	DocumentSigned            DocumentStatus = "signed"
	DocumentRequiresReview    DocumentStatus = "requires_review"
	DocumentCompleted         DocumentStatus = "completed"
)

func (s DocumentStatus) Label() string {
	switch s {
	case DocumentAwaitingSignature:
		return "Pendiente de Firma"
	case DocumentSigned:
		return "Firmado"
	case DocumentRequiresReview:
		return "Requiere Revisión"
	case DocumentCompleted:
		return "Completado"
	}
	return string(s)
}
