package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/claon/claon-admin/internal/app"
	types "github.com/claon/claon-admin/internal/domain"
	"github.com/claon/claon-admin/internal/platform/dbctx"
	"github.com/claon/claon-admin/internal/platform/logger"
	"github.com/claon/claon-admin/internal/services"
)

// issue_token prints a bearer token for local testing. With -lookup the role
// is read from the database instead of -role.
func main() {
	var userID, role string
	var lookup bool
	flag.StringVar(&userID, "user-id", "", "user id to put in the token subject")
	flag.StringVar(&role, "role", string(types.RoleCenterAdmin), "role claim when -lookup is not set")
	flag.BoolVar(&lookup, "lookup", false, "load the user from the database")
	flag.Parse()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		fmt.Println("-user-id is required")
		os.Exit(2)
	}

	user := &types.User{ID: userID, Role: types.Role(strings.ToUpper(strings.TrimSpace(role)))}
	var auth services.AuthService
	if lookup {
		ctx := context.Background()
		application, err := app.New(ctx)
		if err != nil {
			fmt.Printf("init app: %v\n", err)
			os.Exit(1)
		}
		found, err := application.Repos.User.GetByID(dbctx.Context{Ctx: ctx}, userID)
		application.Close()
		if err != nil {
			fmt.Printf("load user: %v\n", err)
			os.Exit(1)
		}
		if found == nil {
			fmt.Printf("user %s does not exist\n", userID)
			os.Exit(1)
		}
		user = found
		auth = application.Services.Auth
	} else {
		cfg, err := app.LoadConfig()
		if err != nil {
			fmt.Printf("%v\n", err)
			os.Exit(1)
		}
		auth = services.NewAuthService(logger.Nop(), cfg.JWTSecretKey, cfg.AccessTokenTTL)
	}

	token, err := auth.IssueAccessToken(user)
	if err != nil {
		fmt.Printf("issue token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
