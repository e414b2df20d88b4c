package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"cvnest.backend/internal/domain/entities"
	domainErrors "cvnest.backend/internal/domain/errors"
	"cvnest.backend/internal/infrastructure/ai"
)

type stubUserRepo struct {
	createFn          func(ctx context.Context, user *entities.User) error
	getByIDFn         func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	getByEmailFn      func(ctx context.Context, email string) (*entities.User, error)
	updateFn          func(ctx context.Context, user *entities.User) error
	updatePasswordFn  func(ctx context.Context, id uuid.UUID, hash string) error
	updateEmailFn     func(ctx context.Context, id uuid.UUID, email string) error
	setSubscriptionFn func(ctx context.Context, id uuid.UUID, until time.Time) error
	listFn            func(ctx context.Context, search string, offset, limit int) ([]*entities.User, int64, error)
	countFn           func(ctx context.Context) (int64, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *entities.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubUserRepo) Update(ctx context.Context, user *entities.User) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, user)
	}
	return nil
}

func (s *stubUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	if s.updatePasswordFn != nil {
		return s.updatePasswordFn(ctx, id, hash)
	}
	return nil
}

func (s *stubUserRepo) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	if s.updateEmailFn != nil {
		return s.updateEmailFn(ctx, id, email)
	}
	return nil
}

func (s *stubUserRepo) SetSubscriptionUntil(ctx context.Context, id uuid.UUID, until time.Time) error {
	if s.setSubscriptionFn != nil {
		return s.setSubscriptionFn(ctx, id, until)
	}
	return nil
}

func (s *stubUserRepo) List(ctx context.Context, search string, offset, limit int) ([]*entities.User, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, search, offset, limit)
	}
	return nil, 0, nil
}

func (s *stubUserRepo) Count(ctx context.Context) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx)
	}
	return 0, nil
}

type stubVerifRepo struct {
	issueFn         func(ctx context.Context, code *entities.VerificationCode) error
	getFn           func(ctx context.Context, userID uuid.UUID, purpose entities.VerificationPurpose) (*entities.VerificationCode, error)
	consumeFn       func(ctx context.Context, userID uuid.UUID, purpose entities.VerificationPurpose, presented string, now time.Time) (*entities.VerificationCode, error)
	clearFn         func(ctx context.Context, userID uuid.UUID, purpose entities.VerificationPurpose) error
	deleteExpiredFn func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (s *stubVerifRepo) Issue(ctx context.Context, code *entities.VerificationCode) error {
	if s.issueFn != nil {
		return s.issueFn(ctx, code)
	}
	return nil
}

func (s *stubVerifRepo) Get(ctx context.Context, userID uuid.UUID, purpose entities.VerificationPurpose) (*entities.VerificationCode, error) {
	if s.getFn != nil {
		return s.getFn(ctx, userID, purpose)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubVerifRepo) Consume(ctx context.Context, userID uuid.UUID, purpose entities.VerificationPurpose, presented string, now time.Time) (*entities.VerificationCode, error) {
	if s.consumeFn != nil {
		return s.consumeFn(ctx, userID, purpose, presented, now)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubVerifRepo) Clear(ctx context.Context, userID uuid.UUID, purpose entities.VerificationPurpose) error {
	if s.clearFn != nil {
		return s.clearFn(ctx, userID, purpose)
	}
	return nil
}

func (s *stubVerifRepo) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	if s.deleteExpiredFn != nil {
		return s.deleteExpiredFn(ctx, cutoff)
	}
	return 0, nil
}

type stubResumeRepo struct {
	createFn     func(ctx context.Context, resume *entities.Resume) error
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*entities.Resume, error)
	listByUserFn func(ctx context.Context, userID uuid.UUID) ([]*entities.Resume, error)
	updateFn     func(ctx context.Context, resume *entities.Resume) error
	deleteFn     func(ctx context.Context, id uuid.UUID) error
}

func (s *stubResumeRepo) Create(ctx context.Context, resume *entities.Resume) error {
	if s.createFn != nil {
		return s.createFn(ctx, resume)
	}
	return nil
}

func (s *stubResumeRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Resume, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubResumeRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Resume, error) {
	if s.listByUserFn != nil {
		return s.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (s *stubResumeRepo) Update(ctx context.Context, resume *entities.Resume) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, resume)
	}
	return nil
}

func (s *stubResumeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubPlanRepo struct {
	getByCodeFn func(ctx context.Context, code string) (*entities.Plan, error)
	getByIDFn   func(ctx context.Context, id uuid.UUID) (*entities.Plan, error)
	listFn      func(ctx context.Context) ([]*entities.Plan, error)
}

func (s *stubPlanRepo) GetByCode(ctx context.Context, code string) (*entities.Plan, error) {
	if s.getByCodeFn != nil {
		return s.getByCodeFn(ctx, code)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubPlanRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Plan, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubPlanRepo) List(ctx context.Context) ([]*entities.Plan, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

type stubSaleRepo struct {
	createFn        func(ctx context.Context, sale *entities.Sale) error
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*entities.Sale, error)
	listByUserFn    func(ctx context.Context, userID uuid.UUID) ([]*entities.Sale, error)
	listByStatusFn  func(ctx context.Context, status entities.SaleStatus, offset, limit int) ([]*entities.Sale, int64, error)
	updateStatusFn  func(ctx context.Context, id uuid.UUID, status entities.SaleStatus) error
	countByStatusFn func(ctx context.Context, status entities.SaleStatus) (int64, error)
}

func (s *stubSaleRepo) Create(ctx context.Context, sale *entities.Sale) error {
	if s.createFn != nil {
		return s.createFn(ctx, sale)
	}
	return nil
}

func (s *stubSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Sale, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubSaleRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Sale, error) {
	if s.listByUserFn != nil {
		return s.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (s *stubSaleRepo) ListByStatus(ctx context.Context, status entities.SaleStatus, offset, limit int) ([]*entities.Sale, int64, error) {
	if s.listByStatusFn != nil {
		return s.listByStatusFn(ctx, status, offset, limit)
	}
	return nil, 0, nil
}

func (s *stubSaleRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.SaleStatus) error {
	if s.updateStatusFn != nil {
		return s.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (s *stubSaleRepo) CountByStatus(ctx context.Context, status entities.SaleStatus) (int64, error) {
	if s.countByStatusFn != nil {
		return s.countByStatusFn(ctx, status)
	}
	return 0, nil
}

type stubCouponRepo struct {
	createFn        func(ctx context.Context, coupon *entities.Coupon) error
	getByCodeFn     func(ctx context.Context, code string) (*entities.Coupon, error)
	listFn          func(ctx context.Context) ([]*entities.Coupon, error)
	incrementUsesFn func(ctx context.Context, id uuid.UUID) error
	deactivateFn    func(ctx context.Context, id uuid.UUID) error
}

func (s *stubCouponRepo) Create(ctx context.Context, coupon *entities.Coupon) error {
	if s.createFn != nil {
		return s.createFn(ctx, coupon)
	}
	return nil
}

func (s *stubCouponRepo) GetByCode(ctx context.Context, code string) (*entities.Coupon, error) {
	if s.getByCodeFn != nil {
		return s.getByCodeFn(ctx, code)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubCouponRepo) List(ctx context.Context) ([]*entities.Coupon, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *stubCouponRepo) IncrementUses(ctx context.Context, id uuid.UUID) error {
	if s.incrementUsesFn != nil {
		return s.incrementUsesFn(ctx, id)
	}
	return nil
}

func (s *stubCouponRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	if s.deactivateFn != nil {
		return s.deactivateFn(ctx, id)
	}
	return nil
}

type stubChatRepo struct {
	createThreadFn  func(ctx context.Context, thread *entities.ChatThread) error
	getThreadFn     func(ctx context.Context, id uuid.UUID) (*entities.ChatThread, error)
	listThreadsFn   func(ctx context.Context, userID uuid.UUID) ([]*entities.ChatThread, error)
	deleteThreadFn  func(ctx context.Context, id uuid.UUID) error
	appendMessageFn func(ctx context.Context, msg *entities.ChatMessage) error
	listMessagesFn  func(ctx context.Context, threadID uuid.UUID) ([]*entities.ChatMessage, error)
}

func (s *stubChatRepo) CreateThread(ctx context.Context, thread *entities.ChatThread) error {
	if s.createThreadFn != nil {
		return s.createThreadFn(ctx, thread)
	}
	return nil
}

func (s *stubChatRepo) GetThread(ctx context.Context, id uuid.UUID) (*entities.ChatThread, error) {
	if s.getThreadFn != nil {
		return s.getThreadFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubChatRepo) ListThreads(ctx context.Context, userID uuid.UUID) ([]*entities.ChatThread, error) {
	if s.listThreadsFn != nil {
		return s.listThreadsFn(ctx, userID)
	}
	return nil, nil
}

func (s *stubChatRepo) DeleteThread(ctx context.Context, id uuid.UUID) error {
	if s.deleteThreadFn != nil {
		return s.deleteThreadFn(ctx, id)
	}
	return nil
}

func (s *stubChatRepo) AppendMessage(ctx context.Context, msg *entities.ChatMessage) error {
	if s.appendMessageFn != nil {
		return s.appendMessageFn(ctx, msg)
	}
	return nil
}

func (s *stubChatRepo) ListMessages(ctx context.Context, threadID uuid.UUID) ([]*entities.ChatMessage, error) {
	if s.listMessagesFn != nil {
		return s.listMessagesFn(ctx, threadID)
	}
	return nil, nil
}

type stubCompleter struct {
	completeFn func(ctx context.Context, system string, messages []ai.Message) (string, error)
}

func (s *stubCompleter) Complete(ctx context.Context, system string, messages []ai.Message) (string, error) {
	if s.completeFn != nil {
		return s.completeFn(ctx, system, messages)
	}
	return "ok", nil
}

type stubDispatcher struct {
	ready  bool
	sendFn func(ctx context.Context, phone, text string) bool
}

func (s *stubDispatcher) IsReady() bool { return s.ready }

func (s *stubDispatcher) SendText(ctx context.Context, phone, text string) bool {
	if s.sendFn != nil {
		return s.sendFn(ctx, phone, text)
	}
	return s.ready
}

type stubBotCheck struct {
	isHumanFn func(ctx context.Context, phone string) (bool, error)
}

func (s *stubBotCheck) IsHuman(ctx context.Context, phone string) (bool, error) {
	if s.isHumanFn != nil {
		return s.isHumanFn(ctx, phone)
	}
	return true, nil
}

type stubEmailSender struct {
	otpFn     func(to, code string) error
	welcomeFn func(to, name string) error
}

func (s *stubEmailSender) SendOTPEmail(to, code string) error {
	if s.otpFn != nil {
		return s.otpFn(to, code)
	}
	return nil
}

func (s *stubEmailSender) SendWelcomeEmail(to, name string) error {
	if s.welcomeFn != nil {
		return s.welcomeFn(to, name)
	}
	return nil
}
