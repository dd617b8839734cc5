// Package seed loads the demo dataset into an empty store. With the
// default in-memory database this runs on every boot, which mirrors the
// reset-on-reload behavior of the original portal demo.
package seed

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"lexconnect/internal/domain"
	"lexconnect/internal/port"
)

// DemoPassword is the shared password of every seeded demo account.
const DemoPassword = "demo1234"

// Repos bundles the repositories the seeder writes through.
type Repos struct {
	Users         port.UserRepository
	Cases         port.CaseRepository
	Appointments  port.AppointmentRepository
	Documents     port.DocumentRepository
	Conversations port.ConversationRepository
	CaseTypes     port.CaseTypeRepository
	Notifications port.NotificationRepository
}

// Run seeds the demo dataset if the store has no users yet.
func Run(ctx context.Context, r Repos) error {
	existing, err := r.Users.List(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	if err := seedUsers(ctx, r.Users); err != nil {
		return err
	}
	if err := seedCaseTypes(ctx, r.CaseTypes); err != nil {
		return err
	}
	if err := seedCases(ctx, r.Cases); err != nil {
		return err
	}
	if err := seedAppointments(ctx, r.Appointments); err != nil {
		return err
	}
	if err := seedDocuments(ctx, r.Documents); err != nil {
		return err
	}
	if err := seedConversations(ctx, r.Conversations); err != nil {
		return err
	}
	return seedNotifications(ctx, r.Notifications)
}

func relDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format(domain.DateLayout)
}

func seedUsers(ctx context.Context, repo port.UserRepository) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), 12)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	users := []domain.User{
		{ID: "USR001", Name: "Juan Pérez", Email: "juan.perez@example.com", Role: domain.RoleClient, IsActive: true},
		{ID: "USR002", Name: "Juana García", Email: "juana.garcia@lexconnect.example", Role: domain.RoleAttorney, IsActive: true},
		{ID: "USR003", Name: "Roberto Sanz", Email: "roberto.sanz@example.com", Role: domain.RoleClient, IsActive: true},
		{ID: "USR004", Name: "Miguel Torres", Email: "miguel.torres@example.com", Role: domain.RoleClient, IsActive: true},
		{ID: "USR005", Name: "Carlos Fernández", Email: "carlos.fernandez@lexconnect.example", Role: domain.RoleAttorney, IsActive: true},
		{ID: "USR006", Name: "Diana Jiménez", Email: "diana.jimenez@lexconnect.example", Role: domain.RoleAttorney, IsActive: true},
		{ID: "USR007", Name: "Gerente User", Email: "gerente@lexconnect.example", Role: domain.RoleManager, IsActive: true},
		{ID: "USR008", Name: "Admin User", Email: "admin@lexconnect.example", Role: domain.RoleAdmin, IsActive: true},
		{ID: "USR009", Name: "David González", Email: "david.gonzalez@example.com", Role: domain.RoleClient, IsActive: false},
		{ID: "USR010", Name: "Ángela Díaz", Email: "angela.diaz@lexconnect.example", Role: domain.RoleAttorney, IsActive: false},
	}
	for i := range users {
		users[i].PasswordHash = string(hash)
		if err := repo.Create(ctx, &users[i]); err != nil {
			return fmt.Errorf("seed user %s: %w", users[i].ID, err)
		}
	}
	return nil
}

func seedCaseTypes(ctx context.Context, repo port.CaseTypeRepository) error {
	subtypes := []domain.CaseSubtype{
		{ID: "JU-001", BaseType: domain.BaseTypeJudicial, Name: "Civil", Description: "Litigios civiles y mercantiles"},
		{ID: "JU-002", BaseType: domain.BaseTypeJudicial, Name: "Laboral", Description: "Conflictos laborales y despidos"},
		{ID: "JU-003", BaseType: domain.BaseTypeJudicial, Name: "Penal", Description: "Defensa penal"},
		{ID: "AD-001", BaseType: domain.BaseTypeAdministrative, Name: "Sanciones", Description: "Recursos contra sanciones administrativas"},
		{ID: "AD-002", BaseType: domain.BaseTypeAdministrative, Name: "Licencias", Description: "Tramitación de licencias y permisos"},
	}
	for i := range subtypes {
		if err := repo.CreateSubtype(ctx, &subtypes[i]); err != nil {
			return fmt.Errorf("seed subtype %s: %w", subtypes[i].ID, err)
		}
	}
	return nil
}

func seedCases(ctx context.Context, repo port.CaseRepository) error {
	cases := []domain.Case{
		{
			ID: "CASO001", CaseNumber: "LEX-2024-001", ClientName: "Juan Pérez",
			BaseType: domain.BaseTypeJudicial, Subtype: "Civil", State: domain.CaseOpen,
			LastUpdate:  relDate(-2),
			Description: "Reclamación de cantidad por incumplimiento contractual",
			AttorneyName: "Juana García",
		},
		{
			ID: "CASO002", CaseNumber: "LEX-2024-002", ClientName: "Juan Pérez",
			BaseType: domain.BaseTypeAdministrative, Subtype: "Sanciones", State: domain.CaseOpen,
			LastUpdate:  relDate(-5),
			Description: "Recurso contra sanción de tráfico",
			AttorneyName: "Carlos Fernández",
		},
		{
			ID: "CASO003", CaseNumber: "LEX-2024-003", ClientName: "Roberto Sanz",
			BaseType: domain.BaseTypeJudicial, Subtype: "Laboral", State: domain.CaseClosed,
			LastUpdate:  relDate(-30),
			Description: "Despido improcedente",
			AttorneyName: "Juana García",
		},
		{
			ID: "CASO004", CaseNumber: "LEX-2024-004", ClientName: "Miguel Torres",
			BaseType: domain.BaseTypeJudicial, Subtype: "Penal", State: domain.CaseOpen,
			LastUpdate:  relDate(-1),
			Description: "Defensa en juicio por delito leve",
			AttorneyName: "Diana Jiménez",
		},
		{
			ID: "CASO005", CaseNumber: "LEX-2024-005", ClientName: "Miguel Torres",
			BaseType: domain.BaseTypeAdministrative, Subtype: "Licencias", State: domain.CaseClosed,
			LastUpdate:  relDate(-60),
			Description: "Licencia de apertura de local comercial",
			AttorneyName: "Carlos Fernández",
		},
	}
	for i := range cases {
		if err := repo.Upsert(ctx, &cases[i]); err != nil {
			return fmt.Errorf("seed case %s: %w", cases[i].ID, err)
		}
	}
	return nil
}

func seedAppointments(ctx context.Context, repo port.AppointmentRepository) error {
	apps := []domain.Appointment{
		{
			ID: "APP001", Title: "Audiencia preliminar", Kind: domain.KindInPerson,
			Date: relDate(7), Time: "10:00",
			Participants: []string{"Juan Pérez", "Juana García"},
			Status:       domain.AppointmentScheduled, CaseID: "CASO001",
		},
		{
			ID: "APP002", Title: "Revisión de expediente", Kind: domain.KindVideoConference,
			Date: relDate(3), Time: "16:30",
			Participants: []string{"Juan Pérez", "Carlos Fernández"},
			Status:       domain.AppointmentScheduled, CaseID: "CASO002",
		},
		{
			ID: "APP003", Title: "Primera consulta", Kind: domain.KindInPerson,
			Date: relDate(-10), Time: "09:00",
			Participants: []string{"Roberto Sanz", "Juana García"},
			Status:       domain.AppointmentCompleted, CaseID: "CASO003",
		},
		{
			ID: "APP004", Title: "Consulta escrita sobre recurso", Kind: domain.KindWrittenConsultation,
			Date: relDate(5), Time: "N/A",
			Participants: []string{"Miguel Torres", "Diana Jiménez"},
			Status:       domain.AppointmentScheduled, CaseID: "CASO004",
		},
		{
			ID: "APP005", Title: "Seguimiento de licencia", Kind: domain.KindVideoConference,
			Date: relDate(-2), Time: "12:00",
			Participants: []string{"Miguel Torres", "Carlos Fernández"},
			Status:       domain.AppointmentCancelled, CaseID: "CASO005",
		},
	}
	for i := range apps {
		if err := repo.Upsert(ctx, &apps[i]); err != nil {
			return fmt.Errorf("seed appointment %s: %w", apps[i].ID, err)
		}
	}
	return nil
}

func seedDocuments(ctx context.Context, repo port.DocumentRepository) error {
	docs := []domain.Document{
		{ID: "DOC001", Name: "Contrato de servicios.pdf", CaseID: "CASO001", Status: domain.DocumentAwaitingSignature, UploadedDate: relDate(-3), Version: "v2"},
		{ID: "DOC002", Name: "Demanda inicial.pdf", CaseID: "CASO001", Status: domain.DocumentSigned, UploadedDate: relDate(-15), Version: "v1"},
		{ID: "DOC003", Name: "Resolución administrativa.pdf", CaseID: "CASO002", Status: domain.DocumentRequiresReview, UploadedDate: relDate(-6), Version: "v1"},
		{ID: "DOC004", Name: "Acta de finiquito.pdf", CaseID: "CASO003", Status: domain.DocumentCompleted, UploadedDate: relDate(-32), Version: "v3"},
		{ID: "DOC005", Name: "Poder notarial.pdf", CaseID: "CASO004", Status: domain.DocumentAwaitingSignature, UploadedDate: relDate(-1), Version: "v1"},
	}
	for i := range docs {
		if err := repo.Create(ctx, &docs[i]); err != nil {
			return fmt.Errorf("seed document %s: %w", docs[i].ID, err)
		}
	}
	return nil
}

func seedConversations(ctx context.Context, repo port.ConversationRepository) error {
	now := time.Now().UTC()
	convs := []domain.Conversation{
		{
			ID: "CONV001", ClientName: "Juan Pérez", AttorneyName: "Juana García",
			LastPreview: "Le he enviado el borrador de la demanda para su revisión.",
			LastTimestamp: now.Add(-2 * time.Hour), UnreadCount: 2,
		},
		{
			ID: "CONV002", ClientName: "Juan Pérez", AttorneyName: "Carlos Fernández",
			LastPreview: "El recurso ha sido presentado correctamente.",
			LastTimestamp: now.Add(-26 * time.Hour), UnreadCount: 0,
		},
		{
			ID: "CONV003", ClientName: "Miguel Torres", AttorneyName: "Diana Jiménez",
			LastPreview: "¿Podemos adelantar la consulta de la próxima semana?",
			LastTimestamp: now.Add(-15 * time.Minute), UnreadCount: 1,
		},
	}
	for i := range convs {
		if err := repo.Create(ctx, &convs[i]); err != nil {
			return fmt.Errorf("seed conversation %s: %w", convs[i].ID, err)
		}
	}

	msgs := []domain.Message{
		{ID: "MSG001", ConversationID: "CONV001", SenderID: "USR001", SenderName: "Juan Pérez", Content: "Buenos días, ¿hay novedades sobre mi caso?", Timestamp: now.Add(-4 * time.Hour)},
		{ID: "MSG002", ConversationID: "CONV001", SenderID: "USR002", SenderName: "Juana García", Content: "Sí, hemos recibido respuesta de la parte contraria.", Timestamp: now.Add(-3 * time.Hour)},
		{ID: "MSG003", ConversationID: "CONV001", SenderID: "USR002", SenderName: "Juana García", Content: "Le he enviado el borrador de la demanda para su revisión.", Timestamp: now.Add(-2 * time.Hour)},
		{ID: "MSG004", ConversationID: "CONV002", SenderID: "USR005", SenderName: "Carlos Fernández", Content: "El recurso ha sido presentado correctamente.", Timestamp: now.Add(-26 * time.Hour)},
		{ID: "MSG005", ConversationID: "CONV003", SenderID: "USR006", SenderName: "Diana Jiménez", Content: "He revisado la documentación que me envió.", Timestamp: now.Add(-1 * time.Hour)},
		{ID: "MSG006", ConversationID: "CONV003", SenderID: "USR004", SenderName: "Miguel Torres", Content: "¿Podemos adelantar la consulta de la próxima semana?", Timestamp: now.Add(-15 * time.Minute)},
	}
	for i := range msgs {
		if err := repo.CreateMessage(ctx, &msgs[i]); err != nil {
			return fmt.Errorf("seed message %s: %w", msgs[i].ID, err)
		}
	}
	return nil
}

func seedNotifications(ctx context.Context, repo port.NotificationRepository) error {
	now := time.Now().UTC()
	notifs := []domain.Notification{
		{ID: "NOTIF001", UserID: "USR001", Title: "Documento pendiente de firma", Description: "Contrato de servicios.pdf requiere su firma", Timestamp: now.Add(-3 * time.Hour), Link: "/documents/DOC001"},
		{ID: "NOTIF002", UserID: "USR001", Title: "Nueva cita programada", Description: "Audiencia preliminar programada", Timestamp: now.Add(-24 * time.Hour), Link: "/appointments/APP001"},
		{ID: "NOTIF003", UserID: "USR004", Title: "Nuevo mensaje", Description: "Diana Jiménez le ha enviado un mensaje", Timestamp: now.Add(-1 * time.Hour), Link: "/conversations/CONV003"},
		{ID: "NOTIF004", UserID: "USR004", Title: "Actualización de caso", Description: "Su caso LEX-2024-004 ha sido actualizado", Timestamp: now.Add(-20 * time.Hour), Read: true, Link: "/cases/CASO004"},
	}
	for i := range notifs {
		if err := repo.Create(ctx, &notifs[i]); err != nil {
			return fmt.Errorf("seed notification %s: %w", notifs[i].ID, err)
		}
	}
	return nil
}
