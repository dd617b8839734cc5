package domain

import "time"

// DateLayout is the wire and storage format for date-only fields.
// Appointment dates compare date-only: lexicographic order on this
// layout matches chronological order.
const DateLayout = "2006-01-02"

// User is a portal account. Accounts are never hard-deleted; admins
// toggle IsActive instead.
type User struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         UserRole  `db:"role" json:"role"`
	AvatarURL    string    `db:"avatar_url" json:"avatar_url,omitempty"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Identity is the session view of a user, carried in token claims and
// threaded through every record listing for role scoping.
type Identity struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Role      UserRole `json:"role"`
	AvatarURL string   `json:"avatar_url,omitempty"`
}

// Identity projects the session-visible fields of a user.
func (u *User) Identity() *Identity {
	return &Identity{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		AvatarURL: u.AvatarURL,
	}
}

// Case is a legal matter. Subtype, when set, must belong to the subtype
// set of the case's base type. Cases are never deleted.
type Case struct {
	ID           string       `db:"id" json:"id"`
	CaseNumber   string       `db:"case_number" json:"case_number"`
	ClientName   string       `db:"client_name" json:"client_name"`
	BaseType     CaseBaseType `db:"base_type" json:"base_type"`
	Subtype      string       `db:"subtype" json:"subtype,omitempty"`
	State        CaseState    `db:"state" json:"state"`
	LastUpdate   string       `db:"last_update" json:"last_update"`
	Description  string       `db:"description" json:"description"`
	AttorneyName string       `db:"attorney_name" json:"attorney_name,omitempty"`
}

// Appointment is a scheduled consultation. Participants reference
// existing user names. Time is a display string; written consultations
// carry "N/A".
type Appointment struct {
	ID           string            `db:"id" json:"id"`
	Title        string            `db:"title" json:"title"`
	Kind         AppointmentKind   `db:"kind" json:"kind"`
	Date         string            `db:"date" json:"date"`
	Time         string            `db:"time" json:"time"`
	Participants []string          `db:"-" json:"participants"`
	Status       AppointmentStatus `db:"status" json:"status"`
	CaseID       string            `db:"case_id" json:"case_id,omitempty"`
}

// Document is signing metadata for a case file. Content lives outside
// this system; only the name, version and signature state are tracked.
type Document struct {
	ID           string         `db:"id" json:"id"`
	Name         string         `db:"name" json:"name"`
	CaseID       string         `db:"case_id" json:"case_id"`
	Status       DocumentStatus `db:"status" json:"status"`
	UploadedDate string         `db:"uploaded_date" json:"uploaded_date"`
	Version      string         `db:"version" json:"version"`
}

// Conversation is a client/attorney message thread. Preview, timestamp
// and unread count are denormalized from the newest message.
type Conversation struct {
	ID            string    `db:"id" json:"id"`
	ClientName    string    `db:"client_name" json:"client_name"`
	AttorneyName  string    `db:"attorney_name" json:"attorney_name"`
	LastPreview   string    `db:"last_preview" json:"last_preview"`
	LastTimestamp time.Time `db:"last_timestamp" json:"last_timestamp"`
	UnreadCount   int       `db:"unread_count" json:"unread_count"`
	AvatarURL     string    `db:"avatar_url" json:"avatar_url,omitempty"`
}

// Message is a single entry in a conversation.
type Message struct {
	ID             string    `db:"id" json:"id"`
	ConversationID string    `db:"conversation_id" json:"conversation_id"`
	SenderID       string    `db:"sender_id" json:"sender_id"`
	SenderName     string    `db:"sender_name" json:"sender_name"`
	Content        string    `db:"content" json:"content"`
	Timestamp      time.Time `db:"timestamp" json:"timestamp"`
}

// CaseSubtype is an admin-defined subcategory under a fixed base type.
// IDs are generated per base type: JU-001, JU-002, ... / AD-001, ...
type CaseSubtype struct {
	ID          string       `db:"id" json:"id"`
	BaseType    CaseBaseType `db:"base_type" json:"base_type"`
	Name        string       `db:"name" json:"name"`
	Description string       `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
}

// Notification is a portal alert shown in the header dropdown.
type Notification struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Timestamp   time.Time `db:"timestamp" json:"timestamp"`
	Read        bool      `db:"read" json:"read"`
	Link        string    `db:"link" json:"link,omitempty"`
}
