package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lexconnect/internal/domain"
	"lexconnect/internal/service"
	"lexconnect/mocks"
)

func demoConversations() []domain.Conversation {
	return []domain.Conversation{
		{ID: "CONV001", ClientName: "Juan Pérez", AttorneyName: "Juana García", LastPreview: "Hola", UnreadCount: 2, LastTimestamp: time.Now().Add(-time.Hour)},
		{ID: "CONV003", ClientName: "Miguel Torres", AttorneyName: "Diana Jiménez", LastPreview: "Buenas tardes", UnreadCount: 1, LastTimestamp: time.Now().Add(-2 * time.Hour)},
	}
}

func TestConversationService_List_ScopedToParties(t *testing.T) {
	repo := new(mocks.MockConversationRepo)
	svc := service.NewConversationService(repo)

	repo.On("List", mock.Anything).Return(demoConversations(), nil)

	convs, err := svc.List(context.Background(), clientIdent("Juan Pérez"), "")

	assert.NoError(t, err)
	assert.Len(t, convs, 1)
	assert.Equal(t, "CONV001", convs[0].ID)
}

func TestConversationService_SendMessage_UpdatesThreadHeader(t *testing.T) {
	repo := new(mocks.MockConversationRepo)
	svc := service.NewConversationService(repo)

	stored := demoConversations()[0]
	repo.On("GetByID", mock.Anything, "CONV001").Return(&stored, nil)
	repo.On("CreateMessage", mock.Anything, mock.AnythingOfType("*domain.Message")).Return(nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Conversation")).Return(nil)

	msg, err := svc.SendMessage(context.Background(), clientIdent("Juan Pérez"), "CONV001", service.SendMessageInput{
		Content: "  ¿Hay novedades?  ",
	})

	assert.NoError(t, err)
	assert.Equal(t, "¿Hay novedades?", msg.Content)
	assert.Equal(t, "Juan Pérez", msg.SenderName)
	assert.Equal(t, "¿Hay novedades?", stored.LastPreview)
	assert.Equal(t, 3, stored.UnreadCount)
	assert.Equal(t, msg.Timestamp, stored.LastTimestamp)
}

func TestConversationService_SendMessage_EmptyContent(t *testing.T) {
	repo := new(mocks.MockConversationRepo)
	svc := service.NewConversationService(repo)

	_, err := svc.SendMessage(context.Background(), clientIdent("Juan Pérez"), "CONV001", service.SendMessageInput{
		Content: "   ",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "CreateMessage")
}

func TestConversationService_SendMessage_OutsideScope(t *testing.T) {
	repo := new(mocks.MockConversationRepo)
	svc := service.NewConversationService(repo)

	stored := demoConversations()[1] // Miguel's thread
	repo.On("GetByID", mock.Anything, "CONV003").Return(&stored, nil)

	_, err := svc.SendMessage(context.Background(), clientIdent("Juan Pérez"), "CONV003", service.SendMessageInput{
		Content: "Hola",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "CreateMessage")
}

func TestConversationService_MarkRead_ResetsCounter(t *testing.T) {
	repo := new(mocks.MockConversationRepo)
	svc := service.NewConversationService(repo)

	stored := demoConversations()[0]
	repo.On("GetByID", mock.Anything, "CONV001").Return(&stored, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Conversation")).Return(nil)

	conv, err := svc.MarkRead(context.Background(), clientIdent("Juan Pérez"), "CONV001")

	assert.NoError(t, err)
	assert.Equal(t, 0, conv.UnreadCount)
}

func TestConversationService_MarkRead_AlreadyRead(t *testing.T) {
	repo := new(mocks.MockConversationRepo)
	svc := service.NewConversationService(repo)

	stored := demoConversations()[0]
	stored.UnreadCount = 0
	repo.On("GetByID", mock.Anything, "CONV001").Return(&stored, nil)

	conv, err := svc.MarkRead(context.Background(), clientIdent("Juan Pérez"), "CONV001")

	assert.NoError(t, err)
	assert.Equal(t, 0, conv.UnreadCount)
	repo.AssertNotCalled(t, "Update")
}
