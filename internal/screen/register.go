package screen

import (
	"context"
	"errors"

	"github.com/mpawlak/zakupnik/internal/auth"
	"github.com/mpawlak/zakupnik/internal/nav"
	"github.com/mpawlak/zakupnik/internal/service"
	"github.com/mpawlak/zakupnik/internal/ui"
)

// RegistrationScreen creates new accounts.
type RegistrationScreen struct {
	guard     *nav.Guard
	navigator *nav.Navigator
	auth      *service.AuthService
	ui        ui.UI
}

// NewRegistrationScreen creates the registration screen.
func NewRegistrationScreen(guard *nav.Guard, navigator *nav.Navigator, authService *service.AuthService, ui ui.UI) *RegistrationScreen {
	return &RegistrationScreen{guard: guard, navigator: navigator, auth: authService, ui: ui}
}

// Show runs one interaction round.
func (s *RegistrationScreen) Show(ctx context.Context) error {
	s.guard.CheckSession(s.navigator, true)
	if s.navigator.Current() != nav.RouteRegistration {
		return nil
	}

	s.ui.Print("== Rejestracja ==")
	choice, err := s.ui.Prompt("1 - Zarejestruj, 2 - Logowanie, q - Wyjście")
	if err != nil {
		return ErrQuit
	}

	switch choice {
	case "1":
		return s.handleRegistration(ctx)
	case "2":
		s.navigator.Back()
	case "q":
		return ErrQuit
	}
	return nil
}

func (s *RegistrationScreen) handleRegistration(ctx context.Context) error {
	username, err := s.ui.Prompt("Nazwa użytkownika")
	if err != nil {
		return ErrQuit
	}
	password, err := s.ui.Prompt("Hasło")
	if err != nil {
		return ErrQuit
	}

	_, err = s.auth.Register(ctx, username, password)
	switch {
	case errors.Is(err, auth.ErrEmptyCredentials):
		s.ui.Alert("Błąd", "Nazwa użytkownika i hasło nie mogą być puste.")
	case errors.Is(err, auth.ErrUsernameTaken):
		s.ui.Alert("Błąd", "Użytkownik o podanej nazwie już istnieje.")
	case err != nil:
		s.ui.Alert("Błąd", "Wystąpił błąd podczas rejestracji. Spróbuj ponownie.")
	default:
		s.ui.Alert("Sukces", "Rejestracja przebiegła pomyślnie. Możesz się teraz zalogować.")
		s.navigator.Back()
	}
	return nil
}
