// Package activation управляет сессиями активации аккаунта через STK push платежного шлюза.
// Каждая сессия проходит по шагам
// idle -> pushing -> awaiting_confirmation <-> verifying -> success | failed.
package activation

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/azuraxkenya/megaon/internal/domain"
	"github.com/azuraxkenya/megaon/internal/transport/daraja"
)

const (
	defaultServiceTimeout = 3 * time.Second
	defaultAPITimeout     = 10 * time.Second

	// defaultWindow окно ожидания подтверждения оплаты. По его истечении сессия
	// помечается неуспешной.
	defaultWindow = 60 * time.Second
	// defaultPollInterval интервал опроса статуса оплаты у шлюза.
	defaultPollInterval = 10 * time.Second

	msgGatewayUnreachable = "payment gateway unreachable"
	msgWindowExpired      = "confirmation window expired"
	msgPromptMissing      = "payment prompt not received"
	accountReference      = "MEGAON"
)

// Snapshot представляет наблюдаемое состояние сессии активации.
type Snapshot struct {
	Step              domain.ActivationStep
	CheckoutRequestID string
	Message           string
	Deadline          time.Time
}

// session хранит состояние одной сессии активации. Горутина опроса привязана к cancel
// и останавливается на каждом пути выхода из сессии.
type session struct {
	userID     int64
	step       domain.ActivationStep
	checkoutID string
	message    string
	deadline   time.Time
	cancel     context.CancelFunc
	pollNow    chan struct{}
	done       chan struct{}
}

// Manager управляет сессиями активации, по одной на пользователя.
type Manager struct {
	client       Client
	svs          Servicer
	l            *logrus.Entry
	window       time.Duration
	pollInterval time.Duration

	mu       sync.Mutex
	sessions map[int64]*session
}

// New создает новый менеджер сессий активации.
func New(svs Servicer, apiBaseURL string, l *logrus.Logger) *Manager {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "activation",
		"module":    "manager",
	})

	darajaClient := daraja.New(apiBaseURL)

	return &Manager{
		client:       darajaClient,
		svs:          svs,
		l:            loggerEntry,
		window:       defaultWindow,
		pollInterval: defaultPollInterval,
		sessions:     make(map[int64]*session),
	}
}

// SetWindow устанавливает длительность окна ожидания подтверждения оплаты.
func (m *Manager) SetWindow(window time.Duration) *Manager {
	m.window = window
	return m
}

// SetPollInterval устанавливает интервал опроса статуса оплаты.
func (m *Manager) SetPollInterval(interval time.Duration) *Manager {
	m.pollInterval = interval
	return m
}

// Start начинает новую сессию активации: отправляет STK push на телефон пользователя
// на сумму платы за активацию и запускает горутину опроса статуса.
//
// Возвращает domain.ErrAlreadyActivated если аккаунт уже активирован и
// domain.ErrActivationInProgress если незавершенная сессия уже существует.
func (m *Manager) Start(ctx context.Context, userID int64) (Snapshot, error) {
	user, userErr := m.svs.User(ctx, userID)
	if userErr != nil {
		return Snapshot{}, userErr
	}
	if user.IsActivated {
		return Snapshot{}, domain.ErrAlreadyActivated
	}

	conf, confErr := m.svs.Config(ctx)
	if confErr != nil {
		return Snapshot{}, confErr
	}

	m.mu.Lock()
	if existing, ok := m.sessions[userID]; ok && !isTerminal(existing.step) {
		m.mu.Unlock()
		return Snapshot{}, domain.ErrActivationInProgress
	}

	s := &session{
		userID:  userID,
		step:    domain.StepPushing,
		pollNow: make(chan struct{}, 1),
	}
	m.sessions[userID] = s
	m.mu.Unlock()

	reqCtx, cancel := context.WithTimeout(ctx, defaultAPITimeout)
	resp, pushErr := m.client.InitiateStkPush(reqCtx, user.Phone, conf.ActivationFee, accountReference)
	cancel()

	if pushErr != nil {
		m.l.WithError(pushErr).WithField("userID", userID).Error("stk push failed")
		return m.fail(s, msgGatewayUnreachable), nil
	}

	watchCtx, watchCancel := context.WithCancel(context.Background())

	m.mu.Lock()
	s.step = domain.StepAwaitingConf
	s.checkoutID = resp.CheckoutRequestID
	s.message = resp.CustomerMessage
	s.deadline = time.Now().Add(m.window)
	s.cancel = watchCancel
	s.done = make(chan struct{})
	snap := snapshotOf(s)
	m.mu.Unlock()

	m.l.WithFields(logrus.Fields{
		"userID":     userID,
		"checkoutID": resp.CheckoutRequestID,
	}).Info("Awaiting payment confirmation")

	go m.watch(watchCtx, s)

	return snap, nil
}

// Confirm форсирует немедленный опрос статуса: пользователь сообщил что ввел PIN.
func (m *Manager) Confirm(userID int64) (Snapshot, error) {
	m.mu.Lock()
	s, ok := m.sessions[userID]
	if !ok || isTerminal(s.step) || s.step == domain.StepPushing {
		m.mu.Unlock()
		return Snapshot{}, domain.ErrNoActivationSession
	}
	snap := snapshotOf(s)
	m.mu.Unlock()

	select {
	case s.pollNow <- struct{}{}:
	default:
		// опрос уже запрошен
	}
	return snap, nil
}

// ReportMissing помечает сессию неуспешной: пользователь сообщил что промпт оплаты
// так и не пришел на телефон.
func (m *Manager) ReportMissing(userID int64) (Snapshot, error) {
	m.mu.Lock()
	s, ok := m.sessions[userID]
	if !ok || isTerminal(s.step) {
		m.mu.Unlock()
		return Snapshot{}, domain.ErrNoActivationSession
	}
	m.mu.Unlock()

	return m.fail(s, msgPromptMissing), nil
}

// Retry сбрасывает неуспешную сессию и начинает новую попытку активации.
func (m *Manager) Retry(ctx context.Context, userID int64) (Snapshot, error) {
	m.mu.Lock()
	s, ok := m.sessions[userID]
	if !ok || s.step != domain.StepFailed {
		m.mu.Unlock()
		return Snapshot{}, domain.ErrNoActivationSession
	}
	delete(m.sessions, userID)
	m.mu.Unlock()

	stopSession(s)
	return m.Start(ctx, userID)
}

// Cancel отменяет сессию без каких-либо эффектов в леджере.
func (m *Manager) Cancel(userID int64) {
	m.mu.Lock()
	s, ok := m.sessions[userID]
	if ok {
		delete(m.sessions, userID)
	}
	m.mu.Unlock()

	if ok {
		stopSession(s)
	}
}

// Status возвращает снимок текущей сессии пользователя.
// Возвращает domain.ErrNoActivationSession если сессии нет.
func (m *Manager) Status(userID int64) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok {
		return Snapshot{}, domain.ErrNoActivationSession
	}
	return snapshotOf(s), nil
}

// Shutdown останавливает горутины опроса всех активных сессий и дожидается их выхода.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[int64]*session)
	m.mu.Unlock()

	for _, s := range sessions {
		stopSession(s)
	}
	m.l.Info("All activation sessions stopped")
}

// stopSession отменяет горутину опроса сессии и ждет ее завершения.
func stopSession(s *session) {
	if s.cancel == nil {
		return
	}
	s.cancel()
	if s.done != nil {
		<-s.done
	}
}

// watch опрашивает статус оплаты с фиксированным интервалом до подтверждения,
// истечения окна или отмены. Пользователь может форсировать опрос через pollNow.
func (m *Manager) watch(ctx context.Context, s *session) {
	defer close(s.done)

	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()

	deadline := time.NewTimer(time.Until(s.deadline))
	defer deadline.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-deadline.C:
			m.fail(s, msgWindowExpired)
			return
		case <-ticker.C:
			if m.poll(ctx, s) {
				return
			}
		case <-s.pollNow:
			if m.poll(ctx, s) {
				return
			}
		}
	}
}

// poll делает один запрос статуса к шлюзу. Возвращает true если сессия достигла
// терминального шага и опрос надо прекратить.
func (m *Manager) poll(ctx context.Context, s *session) bool {
	m.setStep(s, domain.StepVerifying)

	reqCtx, cancel := context.WithTimeout(ctx, defaultAPITimeout)
	status, queryErr := m.client.QueryStatus(reqCtx, s.checkoutID)
	cancel()

	if queryErr != nil {
		m.l.WithError(queryErr).WithField("userID", s.userID).Error("query payment status")
		m.setStep(s, domain.StepAwaitingConf)
		return false
	}

	if !status.Completed() {
		m.l.WithFields(logrus.Fields{
			"userID":     s.userID,
			"resultCode": status.ResultCode,
		}).Debug("Payment not confirmed yet")
		m.setStep(s, domain.StepAwaitingConf)
		return false
	}

	svcCtx, svcCancel := context.WithTimeout(ctx, defaultServiceTimeout)
	finalizeErr := m.svs.FinalizeActivation(svcCtx, s.userID)
	svcCancel()

	if finalizeErr != nil {
		m.l.WithError(finalizeErr).WithField("userID", s.userID).Error("finalize activation")
		m.fail(s, finalizeErr.Error())
		return true
	}

	m.mu.Lock()
	if !isTerminal(s.step) {
		s.step = domain.StepSuccess
		s.message = status.ResultDesc
	}
	m.mu.Unlock()

	m.l.WithField("userID", s.userID).Info("Activation succeeded")
	return true
}

// fail переводит сессию в терминальный шаг failed и останавливает ее горутину опроса.
func (m *Manager) fail(s *session, message string) Snapshot {
	m.mu.Lock()
	if !isTerminal(s.step) {
		s.step = domain.StepFailed
		s.message = message
	}
	cancel := s.cancel
	snap := snapshotOf(s)
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	return snap
}

// setStep переводит сессию на шаг step. Терминальные шаги липкие: догоняющий опрос,
// чей запрос оборвала отмена сессии, не может перезаписать failed или success.
func (m *Manager) setStep(s *session, step domain.ActivationStep) {
	m.mu.Lock()
	if !isTerminal(s.step) {
		s.step = step
	}
	m.mu.Unlock()
}

func snapshotOf(s *session) Snapshot {
	return Snapshot{
		Step:              s.step,
		CheckoutRequestID: s.checkoutID,
		Message:           s.message,
		Deadline:          s.deadline,
	}
}

func isTerminal(step domain.ActivationStep) bool {
	return step == domain.StepSuccess || step == domain.StepFailed
}
