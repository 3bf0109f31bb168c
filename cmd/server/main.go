package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/egemed/clinic_backend/internal/application"
	"github.com/egemed/clinic_backend/internal/config"
	"github.com/egemed/clinic_backend/internal/editor"
	"github.com/egemed/clinic_backend/internal/email"
	"github.com/egemed/clinic_backend/internal/interfaces/http"
	"github.com/egemed/clinic_backend/internal/media"
	"github.com/egemed/clinic_backend/internal/session"
	"github.com/egemed/clinic_backend/internal/upstream"
)

func main() {
	cfg := config.Load()
	if cfg.APIBaseURL == "" || cfg.WebsiteID == "" {
		log.Printf("Warning: API_BASE_URL or WEBSITE_ID is not set; public pages will render empty and admin calls will fail")
	}

	store := session.NewStore()
	api := upstream.NewClient(cfg.APIBaseURL, cfg.WebsiteID, store)

	// Media backend for editor images and direct uploads; optional.
	var uploader media.Uploader
	switch cfg.MediaBackend {
	case "s3":
		s3up, err := media.NewS3Uploader(context.Background(), cfg.S3Bucket, cfg.S3Region)
		if err != nil {
			log.Printf("Warning: S3 uploader initialization failed: %v", err)
		} else {
			uploader = s3up
		}
	case "cloudinary":
		cldup, err := media.NewCloudinaryUploader(cfg.CloudinaryURL, cfg.MediaFolder)
		if err != nil {
			log.Printf("Warning: Cloudinary uploader initialization failed: %v", err)
		} else {
			uploader = cldup
		}
	}

	// Contact notification mail; optional.
	var mailer *email.Client
	if cfg.SMTPHost != "" {
		m, err := email.NewClient(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFromName, cfg.SMTPFromEmail)
		if err != nil {
			log.Printf("Warning: Email client initialization failed: %v", err)
		} else {
			mailer = m
		}
	}

	// Repositories (HTTP, against the upstream content API)
	blogRepo := upstream.NewBlogRepository(api)
	specialtyRepo := upstream.NewSpecialtyRepository(api)
	categoryRepo := upstream.NewCategoryRepository(api)
	galleryRepo := upstream.NewGalleryRepository(api)
	faqRepo := upstream.NewFAQRepository(api)
	contactRepo := upstream.NewContactRepository(api)
	settingsRepo := upstream.NewSettingsRepository(api)

	// Services
	pipeline := editor.NewPipeline(uploader)
	cache := application.NewContentCache(30 * time.Second)
	limiter := application.NewRateLimiter(time.Minute, 5)

	blogService := application.NewBlogService(blogRepo, pipeline, cache)
	specialtyService := application.NewSpecialtyService(specialtyRepo, pipeline, cache)
	categoryService := application.NewCategoryService(categoryRepo, cache)
	galleryService := application.NewGalleryService(galleryRepo, cache)
	faqService := application.NewFAQService(faqRepo, cache)
	contactService := application.NewContactService(contactRepo, mailer, cfg.ContactNotify)
	settingsService := application.NewSettingsService(settingsRepo, cache)
	publicService := application.NewPublicService(blogRepo, specialtyRepo, galleryRepo, faqRepo, settingsRepo, cache)
	dashboardService := application.NewDashboardService(blogRepo, specialtyRepo, galleryRepo, faqRepo, contactRepo)

	// Handlers
	authHandler := http.NewAuthHandler(api, store)
	publicHandler := http.NewPublicHandler(publicService, contactService, limiter)
	blogHandler := http.NewBlogHandler(blogService)
	specialtyHandler := http.NewSpecialtyHandler(specialtyService)
	categoryHandler := http.NewCategoryHandler(categoryService)
	galleryHandler := http.NewGalleryHandler(galleryService)
	faqHandler := http.NewFAQHandler(faqService)
	contactHandler := http.NewContactHandler(contactService)
	settingsHandler := http.NewSettingsHandler(settingsService)
	dashboardHandler := http.NewDashboardHandler(dashboardService)
	uploadHandler := http.NewUploadHandler(uploader)

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigin,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Admin surface
	admin := app.Group("/api/admin")
	admin.Post("/login", authHandler.Login)
	admin.Post("/logout", authHandler.Logout)
	admin.Get("/me", authHandler.Me)

	// Everything below requires a live session; the three routes above do not.
	admin.Use(http.RequireAdmin(store))
	admin.Get("/dashboard", dashboardHandler.Stats)
	admin.Post("/upload", uploadHandler.Upload)

	blogs := admin.Group("/blogs")
	blogs.Get("/", blogHandler.List)
	blogs.Get("/:id", blogHandler.Get)
	blogs.Post("/", blogHandler.Create)
	blogs.Put("/:id", blogHandler.Update)
	blogs.Delete("/:id", blogHandler.Delete)

	specialties := admin.Group("/specialties")
	specialties.Get("/", specialtyHandler.List)
	specialties.Get("/:id", specialtyHandler.Get)
	specialties.Post("/", specialtyHandler.Create)
	specialties.Put("/:id", specialtyHandler.Update)
	specialties.Delete("/:id", specialtyHandler.Delete)
	specialties.Post("/:id/move", specialtyHandler.Move)

	categories := admin.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	gallery := admin.Group("/gallery")
	gallery.Get("/", galleryHandler.List)
	gallery.Post("/", galleryHandler.Create)
	gallery.Put("/:id", galleryHandler.Update)
	gallery.Delete("/:id", galleryHandler.Delete)
	gallery.Post("/:id/move", galleryHandler.Move)

	faqs := admin.Group("/faqs")
	faqs.Get("/", faqHandler.List)
	faqs.Post("/", faqHandler.Create)
	faqs.Put("/:id", faqHandler.Update)
	faqs.Delete("/:id", faqHandler.Delete)
	faqs.Post("/:id/move", faqHandler.Move)

	messages := admin.Group("/messages")
	messages.Get("/", contactHandler.List)
	messages.Patch("/:id/read", contactHandler.MarkRead)
	messages.Patch("/:id/replied", contactHandler.MarkReplied)
	messages.Delete("/:id", contactHandler.Delete)

	settings := admin.Group("/settings")
	settings.Get("/:section", settingsHandler.GetSection)
	settings.Put("/:section", settingsHandler.UpdateSection)

	// Public surface, locale-prefixed; the gate redirects everything else
	// to the default locale.
	app.Use(http.LocaleGate())

	public := app.Group("/:locale/api")
	public.Get("/blogs", publicHandler.Blogs)
	public.Get("/blogs/:slug", publicHandler.BlogBySlug)
	public.Get("/specialties", publicHandler.Specialties)
	public.Get("/specialties/:slug", publicHandler.SpecialtyBySlug)
	public.Get("/gallery", publicHandler.Gallery)
	public.Get("/faqs", publicHandler.FAQs)
	public.Get("/config", publicHandler.Config)
	public.Get("/about", publicHandler.About)
	public.Post("/contact", publicHandler.SubmitContact)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
