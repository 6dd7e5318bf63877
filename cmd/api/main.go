package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"vendora/internal/adapter/api"
	"vendora/internal/adapter/api/handler"
	apimiddleware "vendora/internal/adapter/api/middleware"
	"vendora/internal/adapter/api/router"
	"vendora/internal/adapter/repository"
	"vendora/internal/usecase"
	"vendora/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	conversationRepo := repository.NewFirestoreConversationRepository(firestoreClient)
	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	hotelRepo := repository.NewFirestoreHotelRepository(firestoreClient)
	restaurantRepo := repository.NewFirestoreRestaurantRepository(firestoreClient)
	datingRepo := repository.NewFirestoreDatingProfileRepository(firestoreClient)

	messagingUseCase := usecase.NewMessagingUseCase(conversationRepo, userRepo, cfg.MaxAttachmentBytes)
	contactUseCase := usecase.NewContactUseCase(messagingUseCase, productRepo, hotelRepo, restaurantRepo, datingRepo)
	listingUseCase := usecase.NewListingUseCase(hotelRepo, restaurantRepo, datingRepo)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)

	conversationHandler := handler.NewConversationHandler(messagingUseCase)
	contactHandler := handler.NewContactHandler(contactUseCase)
	listingHandler := handler.NewListingHandler(listingUseCase)
	healthHandler := handler.NewHealthHandler()

	router.SetupHealthRouter(e, healthHandler)
	router.SetupConversationRouter(e, conversationHandler, contactHandler, authMiddleware)
	router.SetupListingRouter(e, listingHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
