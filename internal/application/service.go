package application

import (
	"context"
	"fmt"

	"github.com/arthanidhi/arthanidhi-cli/internal/domain"
	"github.com/arthanidhi/arthanidhi-cli/internal/ports"
)

// Service is the portal facade the commands talk to. It resolves the
// backend client through the factory on every call so mode changes take
// effect between operations, and owns the session lifecycle.
type Service struct {
	factory  *Factory
	actor    ports.Actor
	sessions ports.SessionStore
	clock    ports.Clock
}

func NewService(factory *Factory, actor ports.Actor, sessions ports.SessionStore, clock ports.Clock) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		factory:  factory,
		actor:    actor,
		sessions: sessions,
		clock:    clock,
	}
}

func (s *Service) client() (ports.BackendClient, error) {
	return s.factory.Client(s.actor)
}

func (s *Service) Login(ctx context.Context, id, name string) (domain.Session, error) {
	session := domain.Session{ID: id, Name: name, CreatedAt: s.clock.Now()}
	if err := s.sessions.Save(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("save session: %w", err)
	}

	return session, nil
}

// Logout clears the session and drops the cached client so the next
// operation authenticates freshly.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.factory.Reset()

	return nil
}

func (s *Service) CurrentSession(ctx context.Context) (domain.Session, error) {
	return s.sessions.Current(ctx)
}

func (s *Service) Account(ctx context.Context) (*domain.Account, error) {
	client, err := s.client()
	if err != nil {
		return nil, err
	}

	return client.GetCallerAccount(ctx)
}

func (s *Service) SaveAccount(ctx context.Context, account domain.Account) error {
	client, err := s.client()
	if err != nil {
		return err
	}

	return client.SaveCallerAccount(ctx, account)
}

func (s *Service) UpdateProfile(ctx context.Context, displayName string) error {
	client, err := s.client()
	if err != nil {
		return err
	}

	return client.UpdateProfile(ctx, displayName)
}

func (s *Service) Balance(ctx context.Context) (domain.Balance, error) {
	client, err := s.client()
	if err != nil {
		return domain.Balance{}, err
	}

	return client.GetBalance(ctx)
}

func (s *Service) Statement(ctx context.Context, rng *domain.TransactionRange) ([]domain.Transaction, error) {
	client, err := s.client()
	if err != nil {
		return nil, err
	}

	return client.GetStatement(ctx, rng)
}

func (s *Service) SearchTransactions(ctx context.Context, keyword string) ([]domain.Transaction, error) {
	client, err := s.client()
	if err != nil {
		return nil, err
	}

	return client.SearchTransactions(ctx, keyword)
}

func (s *Service) Transfer(ctx context.Context, fromAccount, toAccount string, amount int64, description string) error {
	client, err := s.client()
	if err != nil {
		return err
	}

	return client.Transfer(ctx, fromAccount, toAccount, amount, description)
}

func (s *Service) FinancialHealth(ctx context.Context) (domain.FinancialHealth, error) {
	client, err := s.client()
	if err != nil {
		return domain.FinancialHealth{}, err
	}

	return client.GetFinancialHealth(ctx)
}

func (s *Service) MarketSummary(ctx context.Context) ([]domain.MarketData, error) {
	client, err := s.client()
	if err != nil {
		return nil, err
	}

	return client.GetMarketSummary(ctx)
}

func (s *Service) MutualFunds(ctx context.Context) ([]domain.MutualFund, error) {
	client, err := s.client()
	if err != nil {
		return nil, err
	}

	return client.GetMutualFunds(ctx)
}

func (s *Service) Stocks(ctx context.Context) ([]domain.Stock, error) {
	client, err := s.client()
	if err != nil {
		return nil, err
	}

	return client.GetStocks(ctx)
}

func (s *Service) Settings(ctx context.Context) (domain.Settings, error) {
	client, err := s.client()
	if err != nil {
		return domain.Settings{}, err
	}

	return client.GetSettings(ctx)
}

func (s *Service) UpdateSettings(ctx context.Context, settings domain.Settings) error {
	client, err := s.client()
	if err != nil {
		return err
	}

	return client.UpdateSettings(ctx, settings)
}

func (s *Service) Deposit(ctx context.Context, amount int64, description string) error {
	client, err := s.client()
	if err != nil {
		return err
	}

	return client.Deposit(ctx, amount, description)
}

func (s *Service) Withdraw(ctx context.Context, amount int64, description string) error {
	client, err := s.client()
	if err != nil {
		return err
	}

	return client.Withdraw(ctx, amount, description)
}
