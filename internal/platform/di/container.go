// backend/internal/platform/di/container.go
package di

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	httpin "fenestra/internal/adapters/in/http"
	"fenestra/internal/adapters/in/http/middleware"
	outdb "fenestra/internal/adapters/out/db"
	outfs "fenestra/internal/adapters/out/firestore"
	outgcs "fenestra/internal/adapters/out/gcs"
	"fenestra/internal/adapters/out/mail"
	"fenestra/internal/adapters/out/secrets"
	usecase "fenestra/internal/application/usecase"
	"fenestra/internal/infra/config"
	"fenestra/internal/infra/database"
	firestoreinfra "fenestra/internal/infra/firestore"
)

// Container bundles everything main.go needs: the ready-to-serve HTTP
// handler plus the resources that have to be closed on shutdown.
type Container struct {
	Handler http.Handler

	closers []func()
}

// Close releases all external connections in reverse init order.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

// Build initializes external clients, wires repositories into usecases and
// returns the assembled container. Mail is optional: with no SendGrid key
// the service still runs and only logs a warning per submission.
func Build(ctx context.Context, cfg *config.Config) (*Container, error) {
	if missing := cfg.Validate(); len(missing) > 0 {
		return nil, fmt.Errorf("di: missing required config: %s", strings.Join(missing, ", "))
	}

	c := &Container{}

	// Firestore (quotes, photos, profiles, carts).
	fsClient, err := firestoreinfra.NewClient(ctx, cfg.ProjectID, cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("di: init firestore: %w", err)
	}
	c.closers = append(c.closers, func() { _ = fsClient.Close() })

	// Postgres (product variants, stock items).
	pg, err := database.NewConnection(cfg.PostgresDSN)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("di: init postgres: %w", err)
	}
	c.closers = append(c.closers, func() { _ = pg.Client.Close() })

	// Cloud Storage (private photo bucket + public catalog bucket).
	var gcsOpts []option.ClientOption
	if strings.TrimSpace(cfg.CredentialsFile) != "" {
		gcsOpts = append(gcsOpts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	gcsClient, err := storage.NewClient(ctx, gcsOpts...)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("di: init cloud storage: %w", err)
	}
	c.closers = append(c.closers, func() { _ = gcsClient.Close() })

	// Firebase Auth (customer bearer tokens).
	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, gcsOpts...)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("di: init firebase app: %w", err)
	}
	fbAuth, err := fbApp.Auth(ctx)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("di: init firebase auth: %w", err)
	}

	// Repositories.
	quoteRepo := outfs.NewQuoteRepositoryFS(fsClient.Client)
	photoRepo := outfs.NewPhotoRepositoryFS(fsClient.Client)
	profileRepo := outfs.NewProfileRepositoryFS(fsClient.Client)
	cartRepo := outfs.NewCartRepositoryFS(fsClient.Client)
	variantRepo := outdb.NewVariantRepositoryPG(pg.Client)
	stockRepo := outdb.NewStockItemRepositoryPG(pg.Client)

	photoStore := outgcs.NewPhotoRepositoryGCS(gcsClient, cfg.PhotoBucket, cfg.SignerEmail)
	images := outgcs.NewCatalogImageResolver(cfg.CatalogBucket)

	// Mail: direct key first, Secret Manager second, silent mode last.
	notifier := buildNotifier(ctx, cfg, c)

	// Usecases.
	photoUC := usecase.NewPhotoUsecase(photoRepo, photoStore)
	catalogUC := usecase.NewCatalogUsecase(variantRepo, images)
	stockUC := usecase.NewStockItemUsecase(stockRepo, images)
	quoteUC := usecase.NewQuoteUsecase(quoteRepo, variantRepo, profileRepo, photoUC, notifier)
	cartUC := usecase.NewCartUsecase(cartRepo)
	checkoutUC := usecase.NewCheckoutUsecase(cartRepo, stockRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo)

	c.Handler = httpin.NewRouter(httpin.RouterDeps{
		CatalogUC:  catalogUC,
		StockUC:    stockUC,
		QuoteUC:    quoteUC,
		PhotoUC:    photoUC,
		CartUC:     cartUC,
		CheckoutUC: checkoutUC,
		ProfileUC:  profileUC,
		Auth:       &middleware.AuthMiddleware{FirebaseAuth: fbAuth},
	})

	return c, nil
}

// buildNotifier resolves the SendGrid key and returns the submission mailer,
// or nil when mail is not configured.
func buildNotifier(ctx context.Context, cfg *config.Config, c *Container) usecase.SubmissionNotifier {
	apiKey := strings.TrimSpace(cfg.SendGridAPIKey)

	if apiKey == "" && strings.TrimSpace(cfg.SendGridSecretName) != "" {
		smClient, err := secretmanager.NewClient(ctx)
		if err != nil {
			log.Printf("[di] WARN: secret manager unavailable, mail disabled: %v", err)
			return nil
		}
		c.closers = append(c.closers, func() { _ = smClient.Close() })

		provider := secrets.NewSendGridKeyProviderSM(smClient, cfg.ProjectID, cfg.SendGridSecretName)
		key, err := provider.Get(ctx)
		if err != nil {
			log.Printf("[di] WARN: could not read sendgrid key, mail disabled: %v", err)
			return nil
		}
		apiKey = key
	}

	if apiKey == "" {
		log.Printf("[di] mail not configured, submissions will not send email")
		return nil
	}

	return mail.NewQuoteMailer(mail.NewSendGridClient(apiKey), cfg.MailFrom, cfg.MailInternalTo)
}
