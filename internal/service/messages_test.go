package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-messenger/internal/models"
	"github.com/pribylovaa/go-messenger/internal/storage"
	"github.com/pribylovaa/go-messenger/mocks"
)

// Файл unit-тестов для операций над сообщениями (messages.go).
//
// Покрываем:
//  - CreateMessage: запись в БД + публикация в шину; отказ шины не ломает
//    запрос; не-участник -> ErrNotChatMember; пустой текст -> ErrEmptyText;
//  - UpdateMessage/DeleteMessage: не-участник -> ErrNotChatMember до обращения
//    к хранилищу; чужое сообщение выглядит как ErrNotFound;
//  - SubscribeChat: членство проверяется до подписки.

func TestCreateMessage_SavesAndPublishes(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	author := uuid.New()
	chatID := uuid.New()

	mockSt := mocks.NewMockStorage(ctrl)
	mockBus := mocks.NewMockBus(ctrl)

	gomock.InOrder(
		mockSt.EXPECT().
			IsMember(gomock.Any(), author, chatID).
			Return(true, nil),
		mockSt.EXPECT().
			SaveMessage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *models.Message) error {
				require.Equal(t, "hello", msg.Text, "text must be trimmed")
				require.Equal(t, author, msg.AuthorID)
				require.Equal(t, chatID, msg.ChatID)
				return nil
			}),
		mockBus.EXPECT().
			Publish(gomock.Any(), chatID, gomock.Any()).
			Return(nil),
	)

	svc := New(mockSt, mockBus, testAuthConfig())

	msg, err := svc.CreateMessage(context.Background(), author, chatID, "  hello ")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, msg.ID)
}

func TestCreateMessage_PublishFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockBus := mocks.NewMockBus(ctrl)

	mockSt.EXPECT().IsMember(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	mockSt.EXPECT().SaveMessage(gomock.Any(), gomock.Any()).Return(nil)
	mockBus.EXPECT().
		Publish(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("bus down"))

	svc := New(mockSt, mockBus, testAuthConfig())

	// Сообщение уже в БД: сбой рассылки не должен превращаться в ошибку.
	msg, err := svc.CreateMessage(context.Background(), uuid.New(), uuid.New(), "hello")
	require.NoError(t, err)
	require.NotNil(t, msg)
}

func TestCreateMessage_NotMember(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		IsMember(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, nil)

	svc := New(mockSt, nil, testAuthConfig())

	_, err := svc.CreateMessage(context.Background(), uuid.New(), uuid.New(), "hello")
	require.ErrorIs(t, err, ErrNotChatMember)
}

func TestCreateMessage_EmptyText(t *testing.T) {
	t.Parallel()

	svc := New(nil, nil, testAuthConfig())

	_, err := svc.CreateMessage(context.Background(), uuid.New(), uuid.New(), "   ")
	require.ErrorIs(t, err, ErrEmptyText)
}

func TestUpdateMessage_ForeignLooksLikeNotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	author := uuid.New()
	chatID := uuid.New()

	mockSt := mocks.NewMockStorage(ctrl)
	gomock.InOrder(
		mockSt.EXPECT().
			IsMember(gomock.Any(), author, chatID).
			Return(true, nil),
		mockSt.EXPECT().
			UpdateMessage(gomock.Any(), author, gomock.Any(), "edited").
			Return(nil, storage.ErrNotFound),
	)

	svc := New(mockSt, nil, testAuthConfig())

	_, err := svc.UpdateMessage(context.Background(), author, chatID, uuid.New(), "edited")
	require.ErrorIs(t, err, ErrNotFound)
}

// Автор, исключённый из чата, теряет доступ к своим сообщениям:
// членство проверяется до любого обращения к хранилищу сообщений.
func TestUpdateMessage_FormerMember(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		IsMember(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, nil)

	svc := New(mockSt, nil, testAuthConfig())

	_, err := svc.UpdateMessage(context.Background(), uuid.New(), uuid.New(), uuid.New(), "edited")
	require.ErrorIs(t, err, ErrNotChatMember)
}

func TestDeleteMessage_ForeignLooksLikeNotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	author := uuid.New()
	chatID := uuid.New()

	mockSt := mocks.NewMockStorage(ctrl)
	gomock.InOrder(
		mockSt.EXPECT().
			IsMember(gomock.Any(), author, chatID).
			Return(true, nil),
		mockSt.EXPECT().
			DeleteMessage(gomock.Any(), author, gomock.Any()).
			Return(storage.ErrNotFound),
	)

	svc := New(mockSt, nil, testAuthConfig())

	err := svc.DeleteMessage(context.Background(), author, chatID, uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMessage_FormerMember(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		IsMember(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, nil)

	svc := New(mockSt, nil, testAuthConfig())

	err := svc.DeleteMessage(context.Background(), uuid.New(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, ErrNotChatMember)
}

func TestMessageByID_ReaderMustBeMember(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := uuid.New()
	chatID := uuid.New()
	msg := &models.Message{ID: uuid.New(), ChatID: chatID, AuthorID: uuid.New(), Text: "hello"}

	mockSt := mocks.NewMockStorage(ctrl)
	gomock.InOrder(
		mockSt.EXPECT().
			MessageByID(gomock.Any(), msg.ID).
			Return(msg, nil),
		mockSt.EXPECT().
			IsMember(gomock.Any(), reader, chatID).
			Return(false, nil),
	)

	svc := New(mockSt, nil, testAuthConfig())

	_, err := svc.MessageByID(context.Background(), reader, msg.ID)
	require.ErrorIs(t, err, ErrNotChatMember)
}

func TestSubscribeChat_NotMember(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockBus := mocks.NewMockBus(ctrl)

	mockSt.EXPECT().
		IsMember(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, nil)

	svc := New(mockSt, mockBus, testAuthConfig())

	_, err := svc.SubscribeChat(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, ErrNotChatMember)
}

func TestSubscribeChat_HappyPath(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	chatID := uuid.New()

	mockSt := mocks.NewMockStorage(ctrl)
	mockBus := mocks.NewMockBus(ctrl)
	mockSub := mocks.NewMockSubscription(ctrl)

	gomock.InOrder(
		mockSt.EXPECT().
			IsMember(gomock.Any(), userID, chatID).
			Return(true, nil),
		mockBus.EXPECT().
			Subscribe(gomock.Any(), chatID).
			Return(mockSub, nil),
	)

	svc := New(mockSt, mockBus, testAuthConfig())

	sub, err := svc.SubscribeChat(context.Background(), userID, chatID)
	require.NoError(t, err)
	require.Same(t, mockSub, sub)
}
