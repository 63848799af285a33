// Command blogadmin is a console for the Blog-Admin backend. It
// restores the previous session at startup, signs in and out, and
// drives the content entity endpoints.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/kirubel606/Blog-Admin/internal/config"
	"github.com/kirubel606/Blog-Admin/pkg/api"
	"github.com/kirubel606/Blog-Admin/pkg/gateway"
	"github.com/kirubel606/Blog-Admin/pkg/keystore"
	"github.com/kirubel606/Blog-Admin/pkg/session"
)

const usage = `usage: blogadmin <command> [args]

commands:
  login <username>          sign in, password read from stdin
  logout                    sign out and clear stored tokens
  whoami                    show the signed-in identity
  list <resource>           list entities (news, events, galleries,
                            categories, faqs, quotes, collaborations,
                            rnd, resources, vacancies, users)
  delete <resource> <id>    delete one entity
  settings                  show site-wide settings
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	store, err := keystore.NewFile(cfg.CredentialsFile)
	if err != nil {
		log.Fatal(err)
	}

	manager, err := session.New(session.Config{
		BaseURL:     cfg.BaseURL,
		Store:       store,
		HTTPTimeout: cfg.HTTPTimeout,
		RenewEarly:  cfg.RenewEarly,
	})
	if err != nil {
		log.Fatal(err)
	}

	manager.Restore()

	gw, err := gateway.New(cfg.BaseURL, manager, cfg.HTTPTimeout)
	if err != nil {
		log.Fatal(err)
	}

	client := api.New(gw)
	ctx := context.Background()

	switch os.Args[1] {
	case "login":
		if len(os.Args) < 3 {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		runLogin(manager, os.Args[2])
	case "logout":
		manager.Logout()
		fmt.Println("signed out")
	case "whoami":
		runWhoami(manager)
	case "list":
		if len(os.Args) < 3 {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		runList(ctx, client, os.Args[2])
	case "delete":
		if len(os.Args) < 4 {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		runDelete(ctx, client, os.Args[2], os.Args[3])
	case "settings":
		runSettings(ctx, client)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func runLogin(manager *session.Manager, username string) {
	fmt.Print("Password: ")
	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil {
		log.Fatal(err)
	}

	if err := manager.Login(username, strings.TrimSpace(password)); err != nil {
		log.Fatal(err)
	}

	user, _ := manager.CurrentUser()
	fmt.Printf("signed in as %v (%v)\n", user.Name, user.Email)
}

func runWhoami(manager *session.Manager) {
	user, ok := manager.CurrentUser()
	if !ok {
		fmt.Println("not signed in")
		os.Exit(1)
	}

	fmt.Printf("%v <%v> role=%v admin=%v\n", user.Name, user.Email, user.Role, user.IsAdmin)
}

func runList(ctx context.Context, client *api.Client, resource string) {
	var err error

	switch resource {
	case "news":
		var items []api.News
		if items, err = client.News.All(ctx); err == nil {
			for _, n := range items {
				fmt.Printf("%d\t%v\t%v\n", n.ID, n.Status, n.Title)
			}
		}
	case "events":
		var items []api.Event
		if items, err = client.Events.All(ctx); err == nil {
			for _, e := range items {
				fmt.Printf("%d\t%v\t%v\n", e.ID, e.Timestamp, e.Title)
			}
		}
	case "galleries":
		var items []api.Gallery
		if items, err = client.Galleries.All(ctx); err == nil {
			for _, g := range items {
				fmt.Printf("%d\t%v\n", g.ID, g.Title)
			}
		}
	case "categories":
		var items []api.Category
		if items, err = client.Categories.All(ctx); err == nil {
			for _, c := range items {
				fmt.Printf("%d\t%v\n", c.ID, c.Name)
			}
		}
	case "faqs":
		var items []api.FAQ
		if items, err = client.FAQs.All(ctx); err == nil {
			for _, f := range items {
				fmt.Printf("%d\t%v\n", f.ID, f.Question)
			}
		}
	case "quotes":
		var items []api.Quote
		if items, err = client.Quotes.All(ctx); err == nil {
			for _, q := range items {
				fmt.Printf("%d\t%q by %v\n", q.ID, q.Quote, q.Author)
			}
		}
	case "collaborations":
		var items []api.Collaboration
		if items, err = client.Collaborations.All(ctx); err == nil {
			for _, c := range items {
				fmt.Printf("%d\t%v\n", c.ID, c.Name)
			}
		}
	case "rnd":
		var items []api.RND
		if items, err = client.RND.All(ctx); err == nil {
			for _, r := range items {
				fmt.Printf("%d\t%v\n", r.ID, r.Title)
			}
		}
	case "resources":
		var items []api.Resource
		if items, err = client.Resources.All(ctx); err == nil {
			for _, r := range items {
				fmt.Printf("%d\t%v\n", r.ID, r.Title)
			}
		}
	case "vacancies":
		var items []api.Vacancy
		if items, err = client.Vacancies.All(ctx); err == nil {
			for _, v := range items {
				fmt.Printf("%d\t%v\t%v\n", v.ID, v.Deadline, v.Title)
			}
		}
	case "users":
		var items []api.User
		if items, err = client.Users.All(ctx); err == nil {
			for _, u := range items {
				fmt.Printf("%d\t%v\t%v\t%v\n", u.ID, u.Role, u.Name, u.Email)
			}
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown resource: %v\n", resource)
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func runDelete(ctx context.Context, client *api.Client, resource, rawID string) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid id: %v\n", rawID)
		os.Exit(2)
	}

	switch resource {
	case "news":
		err = client.News.Delete(ctx, id)
	case "events":
		err = client.Events.Delete(ctx, id)
	case "galleries":
		err = client.Galleries.Delete(ctx, id)
	case "categories":
		err = client.Categories.Delete(ctx, id)
	case "faqs":
		err = client.FAQs.Delete(ctx, id)
	case "quotes":
		err = client.Quotes.Delete(ctx, id)
	case "collaborations":
		err = client.Collaborations.Delete(ctx, id)
	case "rnd":
		err = client.RND.Delete(ctx, id)
	case "resources":
		err = client.Resources.Delete(ctx, id)
	case "vacancies":
		err = client.Vacancies.Delete(ctx, id)
	default:
		fmt.Fprintf(os.Stderr, "unknown resource: %v\n", resource)
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("deleted")
}

func runSettings(ctx context.Context, client *api.Client) {
	settings, err := client.Settings.Get(ctx)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("email:    %v\n", settings.Email)
	fmt.Printf("line:     %v\n", settings.Line)
	fmt.Printf("location: %v\n", settings.Location)
	fmt.Printf("map link: %v\n", settings.MapLink)
}
