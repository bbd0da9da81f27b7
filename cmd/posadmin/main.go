package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"posadmin/internal/api"
	"posadmin/internal/session"
	"posadmin/internal/store"
	"posadmin/pkg/config"
	"posadmin/pkg/logger"
	"posadmin/prometheus"
)

func main() {
	// Load configuration
	appConfig, err := config.Load("posadmin")
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(&logger.LogConfig{
		Level:       appConfig.Log.Level,
		Environment: appConfig.Server.Env,
		ServiceName: appConfig.ServiceName,
	}); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Debug("Starting posadmin", appConfig.LogConfig()...)

	// Initialize client metrics
	metrics := prometheus.NewClientMetrics(appConfig.Metrics.Prefix)

	// Expose the recorded metrics for scraping when a port is configured
	if port := appConfig.Metrics.Port; port > 0 {
		go serveMetrics(fmt.Sprintf(":%d", port), log)
	}

	// Open the persisted session store
	sess, err := session.Open(appConfig.Session.DataDir)
	if err != nil {
		log.Fatal("Failed to open session store", zap.Error(err))
	}
	defer sess.Close()

	// Build the API client. Any 401 tears the session down, regardless of
	// which resource call triggered it.
	client := api.NewClient(appConfig.API.BaseURL, appConfig.API.Timeout, sess, log)
	client.Metrics = metrics
	client.OnUnauthorized = func() {
		if err := sess.Clear(); err != nil {
			log.Error("Failed to clear session", zap.Error(err))
		}
		fmt.Fprintln(os.Stderr, "session expired: run 'posadmin login' to sign in again")
	}

	st := store.New(client, log).WithMetrics(metrics)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := logger.WithContext(context.Background(), log)
	if err := run(ctx, os.Args[1], os.Args[2:], client, sess, st); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// serveMetrics serves the Prometheus scrape endpoint on addr
func serveMetrics(addr string, log *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", prometheus.GetPrometheusHandler())
	log.Info("Serving metrics", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Warn("Metrics listener stopped", zap.Error(err))
	}
}

func run(ctx context.Context, command string, args []string, client *api.Client, sess *session.Store, st *store.Store) error {
	switch command {
	case "login":
		return runLogin(ctx, args, client, sess)
	case "logout":
		if err := sess.Clear(); err != nil {
			return err
		}
		fmt.Println("logged out")
		return nil
	case "whoami":
		return runWhoami(sess)
	case "health":
		if err := client.Health(ctx); err != nil {
			return err
		}
		fmt.Println("ok")
		return nil
	case "load":
		return runLoad(ctx, st)
	case "list":
		return runList(ctx, args, st)
	case "search":
		return runSearch(ctx, args, st)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func runLogin(ctx context.Context, args []string, client *api.Client, sess *session.Store) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	if *email == "" || *password == "" {
		return fmt.Errorf("login requires -email and -password")
	}

	resp, err := client.Login(ctx, *email, *password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := sess.SetToken(resp.Token); err != nil {
		return err
	}
	if err := sess.SetUser(resp.User); err != nil {
		return err
	}
	fmt.Printf("logged in as %s (%s)\n", resp.User.Name, resp.User.Email)
	return nil
}

func runWhoami(sess *session.Store) error {
	user, ok := sess.User()
	if !ok {
		return fmt.Errorf("not logged in")
	}
	fmt.Printf("%s <%s> role=%s\n", user.Name, user.Email, user.Role)

	claims, err := sess.Claims()
	if err == nil && claims.ExpiresAt != nil {
		state := "valid"
		if claims.Expired() {
			state = "expired"
		}
		fmt.Printf("session %s until %s\n", state, claims.ExpiresAt.Time.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func runLoad(ctx context.Context, st *store.Store) error {
	st.LoadAll(ctx)
	if msg := st.Err(); msg != "" {
		fmt.Fprintln(os.Stderr, "warning:", msg)
	}

	sum := st.Summary()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "products\t%d\n", sum.ProductCount)
	fmt.Fprintf(w, "customers\t%d\n", sum.CustomerCount)
	fmt.Fprintf(w, "suppliers\t%d\n", sum.SupplierCount)
	fmt.Fprintf(w, "sales\t%d (pending %d, completed %d, cancelled %d)\n",
		sum.SaleCount, sum.PendingSales, sum.CompletedSales, sum.CancelledSales)
	fmt.Fprintf(w, "revenue\t%s\n", sum.Revenue.StringFixed(2))
	fmt.Fprintf(w, "low stock\t%d\n", len(sum.LowStockProduct))
	return w.Flush()
}

func runList(ctx context.Context, args []string, st *store.Store) error {
	if len(args) < 1 {
		return fmt.Errorf("list requires a resource: products|customers|suppliers|sales")
	}

	st.LoadAll(ctx)
	if msg := st.Err(); msg != "" {
		fmt.Fprintln(os.Stderr, "warning:", msg)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	switch args[0] {
	case "products":
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK\tSTATUS")
		for _, p := range st.Products() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n", p.ID, p.Name, p.Category, p.Price.StringFixed(2), p.Stock, p.Status)
		}
	case "customers":
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tTYPE\tSTATUS")
		for _, c := range st.Customers() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Email, c.Phone, c.Type, c.Status)
		}
	case "suppliers":
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tCONTACT\tSTATUS")
		for _, s := range st.Suppliers() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Email, s.ContactPerson, s.Status)
		}
	case "sales":
		fmt.Fprintln(w, "ID\tCUSTOMER\tITEMS\tTOTAL\tSTATUS\tPAYMENT")
		for _, s := range st.Sales() {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n", s.ID, s.CustomerName, len(s.Items), s.Total.StringFixed(2), s.Status, s.PaymentMethod)
		}
	default:
		return fmt.Errorf("unknown resource %q", args[0])
	}
	return nil
}

func runSearch(ctx context.Context, args []string, st *store.Store) error {
	if len(args) < 2 {
		return fmt.Errorf("search requires a resource and a term")
	}
	resource, term := args[0], args[1]

	// Populate collections first so the local fallback has data to filter
	st.LoadAll(ctx)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	switch resource {
	case "products":
		results, err := st.SearchProducts(ctx, term)
		if err != nil {
			return err
		}
		for _, p := range results {
			fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Name, p.Barcode)
		}
	case "customers":
		results, err := st.SearchCustomers(ctx, term)
		if err != nil {
			return err
		}
		for _, c := range results {
			fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Name, c.Email)
		}
	case "suppliers":
		results, err := st.SearchSuppliers(ctx, term)
		if err != nil {
			return err
		}
		for _, s := range results {
			fmt.Fprintf(w, "%s\t%s\t%s\n", s.ID, s.Name, s.Email)
		}
	default:
		return fmt.Errorf("unknown resource %q", resource)
	}
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: posadmin <command> [args]

commands:
  login -email <email> -password <password>
  logout
  whoami
  health
  load
  list <products|customers|suppliers|sales>
  search <products|customers|suppliers> <term>`)
}
