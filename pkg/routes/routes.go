package pkg

import (
	"context"
	"log"

	"SchoolSite/internal/assets"
	"SchoolSite/internal/auth"
	"SchoolSite/internal/config"
	"SchoolSite/internal/content"
	"SchoolSite/internal/inquiry"
	"SchoolSite/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var EchoModules = fx.Module("echo",
	fx.Provide(NewEchoServer),
	fx.Provide(config.NewMongoDBConfig),
	fx.Provide(config.NewMongoDBClient),
	fx.Provide(config.NewResendConfig),
	fx.Provide(config.NewEmailService),
	fx.Provide(assets.NewCloudinaryConfig),
	fx.Provide(assets.NewCloudinaryStore),
	fx.Provide(func(s *assets.CloudinaryStore) assets.Uploader { return s }),
	fx.Provide(auth.NewAdminRepository),
	fx.Provide(auth.NewAdminService),
	fx.Provide(auth.NewAuthHandler),
	fx.Provide(content.NewCollections),
	fx.Provide(content.NewService),
	fx.Provide(content.NewHandler),
	fx.Provide(inquiry.NewCollections),
	fx.Provide(func(e *config.EmailService) inquiry.Mailer { return e }),
	fx.Provide(inquiry.NewService),
	fx.Provide(inquiry.NewHandler),
	fx.Invoke(EnsureIndexes),
	fx.Invoke(RegisterRoutes))

func NewEchoServer(lc fx.Lifecycle) *echo.Echo {
	e := echo.New()
	middleware.SetupMiddleware(e)
	port := ":8080"
	log.Println("Server running on http://localhost" + port[1:])
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(port); err != nil {
					log.Fatal("Failed to start the server:", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("shutting down the server ...")
			return e.Shutdown(ctx)
		},
	})
	return e
}

func EnsureIndexes(client *config.MongoDBClient) {
	config.UniqueAdminEmailIndex(client.GetCollection("admins"))
	config.UniqueNoticeKeyIndex(client.GetCollection("admissionNotices"))
}

func RegisterRoutes(e *echo.Echo, authHandler *auth.AuthHandler, contentHandler *content.Handler, inquiryHandler *inquiry.Handler) {
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// Public content pages
	e.GET("/home", contentHandler.PublicHome)
	e.GET("/notice", contentHandler.PublicNotice)
	e.GET("/events", contentHandler.PublicEvents)
	e.GET("/gallery", contentHandler.PublicGallery)
	e.GET("/faculty", contentHandler.PublicFaculty)
	e.GET("/disclosures", contentHandler.PublicDisclosures)

	// Public forms
	e.POST("/admissions/inquiry", inquiryHandler.SubmitInquiry)
	e.POST("/contact", inquiryHandler.SubmitContact)

	protected := e.Group("/api")
	protected.Use(middleware.JWTMiddleware)
	protected.GET("/profile", authHandler.Profile)

	admin := protected.Group("/admin")
	admin.Use(middleware.CasbinMiddleware)

	admin.GET("/events", contentHandler.ListEvents)
	admin.POST("/events", contentHandler.CreateEvent)
	admin.DELETE("/events/:id", contentHandler.DeleteEvent)

	admin.GET("/gallery", contentHandler.ListGallery)
	admin.POST("/gallery", contentHandler.CreateGalleryImage)
	admin.DELETE("/gallery/:id", contentHandler.DeleteGalleryImage)

	admin.GET("/disclosures", contentHandler.ListDisclosures)
	admin.POST("/disclosures", contentHandler.CreateDisclosure)
	admin.DELETE("/disclosures/:id", contentHandler.DeleteDisclosure)

	admin.GET("/faculty", contentHandler.ListFaculty)
	admin.POST("/faculty", contentHandler.CreateFaculty)
	admin.PUT("/faculty/:id", contentHandler.UpdateFaculty)
	admin.DELETE("/faculty/:id", contentHandler.DeleteFaculty)

	admin.GET("/notice", contentHandler.GetNotice)
	admin.POST("/notice", contentHandler.PublishNotice)
	admin.DELETE("/notice", contentHandler.RemoveNotice)

	admin.GET("/inquiries", inquiryHandler.ListInquiries)
	admin.GET("/contacts", inquiryHandler.ListContacts)
}
