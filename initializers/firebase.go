package initializers

import (
	"context"
	"log"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/FaithPortal/store"
)

// Store starts as the explicit unavailable policy: if Firebase never comes
// up, every read degrades to an empty result instead of crashing a page.
var (
	Store store.Store = store.Unavailable{}
	Auth  *auth.Client
)

// ConnectStore initializes the Firebase app and installs the Firestore
// store handle and the ID-token verifier. Uses the service account file
// when configured, Application Default Credentials otherwise.
func ConnectStore() {
	ctx := context.Background()

	var opts []option.ClientOption
	if path := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}

	var conf *firebase.Config
	if projectID := os.Getenv("FIREBASE_PROJECT_ID"); projectID != "" {
		conf = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		log.Printf("Failed to initialize Firebase app: %v", err)
		return
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		log.Printf("Failed to initialize Firestore client: %v", err)
		return
	}
	Store = store.NewFirestore(client)
	log.Println("Firestore client initialized")

	Auth, err = app.Auth(ctx)
	if err != nil {
		log.Printf("Failed to initialize Firebase auth client: %v", err)
		return
	}
	log.Println("Firebase auth client initialized")
}
