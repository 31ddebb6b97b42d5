package app

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/spf13/cobra"

	"github.com/quizcourse/quizcourse/internal/api/request"
	"github.com/quizcourse/quizcourse/internal/api/response"
	"github.com/quizcourse/quizcourse/internal/domain"
	"github.com/quizcourse/quizcourse/internal/navigation"
	"github.com/quizcourse/quizcourse/internal/service"
)

var (
	errLoginRequired     = errors.New("you need to log in first")
	errInterestsRequired = fmt.Errorf("pick %d interests first (quizcourse interests pick)", domain.RequiredInterests)
)

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "quizcourse",
		Short:         "Trivia courses in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.Session.Bootstrap(cmd.Context())
		},
	}

	root.AddCommand(
		a.statusCommand(),
		a.loginCommand(),
		a.registerCommand(),
		a.logoutCommand(),
		a.whoamiCommand(),
		a.interestsCommand(),
		a.dashboardCommand(),
		a.foldersCommand(),
		a.courseCommand(),
		a.randomCommand(),
		a.playCommand(),
		a.progressCommand(),
		a.energyCommand(),
		a.languageCommand(),
		a.reportCommand(),
	)

	return root
}

// requireMain refuses commands that need a fully onboarded session.
func (a *App) requireMain() error {
	switch a.Session.Route() {
	case navigation.RouteAuth, navigation.RouteLoading:
		return errLoginRequired
	case navigation.RouteInterests:
		return errInterestsRequired
	}

	return nil
}

func (a *App) requireToken() error {
	if !a.Session.Snapshot().HasToken() {
		return errLoginRequired
	}

	return nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current session and where the app would route",
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap := a.Session.Snapshot()
			a.printf("route: %s\n", a.Session.Route())
			if !snap.HasToken() {
				a.printf("not logged in\n")
				return nil
			}
			if snap.User != nil {
				a.printf("user: %s <%s>\n", snap.User.FullName(), snap.User.Email)
				a.printf("interests: %d/%d\n", snap.InterestCount(), domain.RequiredInterests)
			}
			if claims, err := a.Session.Claims(); err == nil && claims.ExpiresAt != nil {
				a.printf("token expires: %s\n", claims.ExpiresAt.Time.Local().Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

func (a *App) loginCommand() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with email and password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if email == "" {
				if email, err = a.prompt("Email: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = a.prompt("Password: "); err != nil {
					return err
				}
			}

			if err := a.Session.Login(cmd.Context(), email, password); err != nil {
				return err
			}
			a.printf("Welcome back, %s!\n", a.Session.Snapshot().User.Name)
			a.printRouteHint()
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")

	return cmd
}

func (a *App) registerCommand() *cobra.Command {
	var req request.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if req.Email == "" {
				if req.Email, err = a.prompt("Email: "); err != nil {
					return err
				}
			}
			if req.Password == "" {
				if req.Password, err = a.prompt("Password: "); err != nil {
					return err
				}
			}
			if req.Name == "" {
				if req.Name, err = a.prompt("Name: "); err != nil {
					return err
				}
			}
			if req.Lastname == "" {
				if req.Lastname, err = a.prompt("Last name: "); err != nil {
					return err
				}
			}
			if req.BirthDate == "" {
				if req.BirthDate, err = a.prompt("Birth date (YYYY-MM-DD): "); err != nil {
					return err
				}
			}

			if err := a.Session.Register(cmd.Context(), req); err != nil {
				return err
			}
			a.printf("Account created. Welcome, %s!\n", req.Name)
			a.printRouteHint()
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "at least 8 characters with a letter and a number")
	cmd.Flags().StringVar(&req.Name, "name", "", "first name")
	cmd.Flags().StringVar(&req.Lastname, "lastname", "", "last name")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&req.BirthDate, "birth-date", "", "birth date as YYYY-MM-DD")

	return cmd
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.Session.Logout(cmd.Context()); err != nil {
				return err
			}
			a.printf("Logged out.\n")
			return nil
		},
	}
}

func (a *App) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the profile of the logged in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			user, err := a.Session.RefreshProfile(cmd.Context())
			if err != nil {
				return err
			}
			a.printf("%s <%s>\n", user.FullName(), user.Email)
			a.printf("interests: %s\n", strings.Join(user.Interests, ", "))
			a.printf("games played: %d  XP: %d\n", len(user.PlayedGameIDs), user.XP())
			return nil
		},
	}
}

func (a *App) interestsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interests",
		Short: "Show the interest catalogue and your picks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			current := map[string]bool{}
			if u := a.Session.Snapshot().User; u != nil {
				for _, i := range u.Interests {
					current[strings.ToLower(i)] = true
				}
			}
			for _, item := range service.StandardInterests {
				mark := " "
				if current[strings.ToLower(item)] {
					mark = "x"
				}
				a.printf("[%s] %s\n", mark, item)
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set INTEREST...",
		Short: fmt.Sprintf("Save exactly %d interests", domain.RequiredInterests),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			return a.saveInterests(cmd, args)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "pick",
		Short: "Pick interests interactively from the catalogue",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			sel := service.NewInterestSelection()
			for !sel.Ready() {
				for i, item := range service.StandardInterests {
					a.printf("%2d. %s\n", i+1, item)
				}
				a.printf("selected: %s\n", strings.Join(sel.Selected(), ", "))
				n, err := a.promptChoice(fmt.Sprintf("Toggle (%d/%d): ", len(sel.Selected()), domain.RequiredInterests), len(service.StandardInterests))
				if err != nil {
					return err
				}
				if _, err := sel.Toggle(service.StandardInterests[n]); err != nil {
					a.printf("%s\n", userMessage(err))
				}
			}
			return a.saveInterests(cmd, sel.Selected())
		},
	})

	return cmd
}

func (a *App) saveInterests(cmd *cobra.Command, interests []string) error {
	user, err := a.Session.SaveInterests(cmd.Context(), interests)
	if err != nil {
		return err
	}
	a.Session.ClearJustRegistered()
	a.printf("Interests saved: %s\n", strings.Join(user.Interests, ", "))
	a.printRouteHint()

	return nil
}

func (a *App) dashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show XP, energy and your courses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireMain(); err != nil {
				return err
			}
			ov, err := a.Dashboard.Overview(cmd.Context())
			if err != nil {
				return err
			}
			a.printf("Hi %s!\n", ov.User.Name)
			a.printf("XP: %d\n", ov.XP)
			a.printf("Energy: %s %d/%d\n", battery(ov.Energy), ov.Energy.Current, ov.Energy.Max)
			a.printf("Courses:\n")
			for _, f := range ov.Folders {
				a.printf("  %s  %s (%d games)\n", f.ID, f.Title, len(f.GameIDs))
			}
			return nil
		},
	}
}

func (a *App) energyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "energy",
		Short: "Show the energy battery",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.Energy.Current(cmd.Context())
			if err != nil {
				return err
			}
			a.printf("%s %d/%d\n", battery(e), e.Current, e.Max)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "refill",
		Short: "Fill the battery back up",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.Energy.Refill(cmd.Context())
			if err != nil {
				return err
			}
			a.printf("%s %d/%d\n", battery(e), e.Current, e.Max)
			return nil
		},
	})

	return cmd
}

func (a *App) languageCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "language [en|es]",
		Short:     "Show or set the language used for generated games",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(domain.LanguageEnglish), string(domain.LanguageSpanish)},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if err := a.Language.Set(cmd.Context(), domain.Language(args[0])); err != nil {
					return err
				}
			}
			lang, err := a.Language.Get(cmd.Context())
			if err != nil {
				return err
			}
			a.printf("language: %s\n", lang)
			return nil
		},
	}
}

func (a *App) reportCommand() *cobra.Command {
	var req request.ReportRequest

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report a problem with a game or a course",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireMain(); err != nil {
				return err
			}
			report, err := a.Reports.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			a.printf("Thanks! Report %s received.\n", report.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.GameID, "game", "", "game id")
	cmd.Flags().StringVar(&req.FolderID, "folder", "", "course id")
	cmd.Flags().StringVar(&req.Reason, "reason", "", "wrong_answer, unclear_question, offensive or other")
	cmd.Flags().StringVar(&req.Details, "details", "", "free text")

	return cmd
}

func (a *App) printRouteHint() {
	switch a.Session.Route() {
	case navigation.RouteInterests:
		a.printf("Next: pick %d interests with `quizcourse interests pick`.\n", domain.RequiredInterests)
	case navigation.RouteMain:
		a.printf("You're all set. Try `quizcourse dashboard`.\n")
	}
}

func battery(e domain.Energy) string {
	var b strings.Builder
	for _, filled := range e.Segments() {
		if filled {
			b.WriteString("■")
		} else {
			b.WriteString("□")
		}
	}

	return b.String()
}

// userMessage turns an error into the short text shown to the user. The
// full chain is logged by the caller.
func userMessage(err error) string {
	var verrs validation.Errors
	var apiErr *response.Err

	switch {
	case errors.Is(err, service.ErrInterestCount):
		return fmt.Sprintf("please choose exactly %d interests", domain.RequiredInterests)
	case errors.Is(err, service.ErrInterestLimit),
		errors.Is(err, service.ErrOutOfEnergy),
		errors.Is(err, service.ErrUnknownOption),
		errors.Is(err, service.ErrUnsupportedLanguage),
		errors.Is(err, errLoginRequired),
		errors.Is(err, errInterestsRequired):
		return err.Error()
	case errors.Is(err, service.ErrSyncFailed):
		return "your answer was saved on this device but could not be synced"
	case errors.As(err, &verrs):
		return verrs.Error()
	case response.IsUnauthorized(err):
		return "your session has expired, please log in again"
	case errors.As(err, &apiErr):
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
		return "the server could not handle the request"
	default:
		return "something went wrong, please try again"
	}
}
