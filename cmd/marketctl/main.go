// Command marketctl is a thin terminal client for the marketplace API:
// login, whoami, logout, and language management on top of the session
// SDK. It is the closest thing this repository has to a screen — the
// real view layer lives elsewhere.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/agrimercato/marketplace-client/internal/core/domain"
	"github.com/agrimercato/marketplace-client/internal/core/ports"
	"github.com/agrimercato/marketplace-client/internal/core/service"
	"github.com/agrimercato/marketplace-client/internal/i18n"
	"github.com/agrimercato/marketplace-client/internal/infrastructure/config"
	"github.com/agrimercato/marketplace-client/internal/infrastructure/gateway"
	"github.com/agrimercato/marketplace-client/internal/infrastructure/store"
	"github.com/agrimercato/marketplace-client/pkg/logger"
)

const usage = `usage: marketctl <command> [flags]

commands:
  login    -email <email> -password <password>
  whoami   print the current session's user and capabilities
  logout   clear the persisted session
  lang     <it|en>  update the language preference
`

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tokens, err := buildTokenStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("token store unavailable")
	}

	session := service.NewSessionService(gateway.New(cfg.APIBaseURL, nil), tokens, log)
	if err := session.Initialize(ctx); err != nil {
		log.Fatal().Err(err).Msg("session initialize failed")
	}

	var exit int
	switch os.Args[1] {
	case "login":
		exit = runLogin(ctx, session, os.Args[2:])
	case "whoami":
		exit = runWhoami(session)
	case "logout":
		session.Logout(ctx)
		fmt.Println("ok")
	case "lang":
		exit = runLang(ctx, session, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		exit = 2
	}
	os.Exit(exit)
}

func buildTokenStore(ctx context.Context, cfg *config.Config) (ports.TokenStore, error) {
	switch cfg.TokenBackend {
	case "redis":
		client, err := store.ConnectRedis(ctx, store.RedisConfig{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, err
		}
		return store.NewRedisTokenStore(client, cfg.Redis.Key, 0), nil
	case "memory":
		return store.NewMemoryTokenStore(), nil
	default:
		return store.NewFileTokenStore(cfg.TokenPath), nil
	}
}

func runLogin(ctx context.Context, session ports.SessionService, args []string) int {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)

	v := validator.New()
	if v.Var(*email, "required,email") != nil || v.Var(*password, "required") != nil {
		fmt.Fprintln(os.Stderr, "login requires a valid -email and a -password")
		return 2
	}

	if !session.Login(ctx, *email, *password) {
		fmt.Fprintln(os.Stderr, i18n.T(lang(session), "errors.invalidCredentials"))
		return 1
	}

	user := session.User()
	fmt.Printf("%s, %s %s (%s)\n",
		i18n.T(user.PreferredLanguage(), "welcome"),
		user.FirstName, user.LastName,
		i18n.TranslateRole(user.PreferredLanguage(), user.RoleName))
	return 0
}

func runWhoami(session ports.SessionService) int {
	l := lang(session)
	user := session.User()
	if !session.IsAuthenticated() {
		fmt.Println(i18n.T(l, "guestUser"))
		return 1
	}

	fmt.Printf("%s: %s %s <%s>\n", i18n.T(l, "userInfo"), user.FirstName, user.LastName, user.Email)
	fmt.Printf("%s: %s — %s\n", i18n.T(l, "role"),
		i18n.TranslateRole(l, user.RoleName), i18n.TranslateRoleDescription(l, user.RoleName))
	fmt.Printf("%s: %s\n", i18n.T(l, "activeAccount"), i18n.TranslateBool(l, user.IsActive))
	fmt.Printf("%s: %s\n", i18n.T(l, "currentLanguage"), user.PreferredLanguage())

	fmt.Println(i18n.T(l, "availableFunctionality") + ":")
	panels := []struct {
		key string
		ok  bool
	}{
		{"adminPanel", domain.CanManageSystem(user)},
		{"salesPanel", domain.CanSellProducts(user)},
		{"purchasePanel", domain.CanBuyProducts(user)},
		{"restaurantPanel", domain.CanManageRestaurant(user)},
		{"eventsPanel", domain.CanOrganizeEvents(user)},
	}
	for _, p := range panels {
		fmt.Printf("  %s: %s\n", i18n.T(l, p.key), i18n.TranslateBool(l, p.ok))
	}
	return 0
}

func runLang(ctx context.Context, session ports.SessionService, args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: marketctl lang <it|en>")
		return 2
	}

	if err := session.UpdateLanguage(ctx, domain.Language(args[0])); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println(i18n.T(lang(session), "languageUpdated"))
	return 0
}

// lang picks the display language: the authenticated user's preference,
// or the default for guests.
func lang(session ports.SessionService) domain.Language {
	return session.User().PreferredLanguage()
}
