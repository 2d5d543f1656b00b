package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"tucita_server/routes"
	"tucita_server/services"
	"tucita_server/socket"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env if present; environment variables win otherwise
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize DynamoDB client and profile store
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	profileService := &services.ProfileService{Dynamo: dynamoService}
	log.Println("DynamoDB client initialized.")

	// Initialize matching services
	compatibilityService := &services.CompatibilityService{Store: profileService}
	recommendationService := &services.RecommendationService{
		Store:  profileService,
		Scorer: compatibilityService,
	}

	// Initialize the socket relay for call-room events
	socketServer := socket.NewSocketServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Printf("Socket server stopped: %v", err)
		}
	}()
	defer socketServer.Close()

	// Recording storage is optional; calls still work without S3 access
	var recordingStorage services.RecordingStorage
	if os.Getenv("S3_BUCKET_NAME") != "" {
		storage, err := services.NewS3RecordingStorage()
		if err != nil {
			log.Printf("Recording storage unavailable: %v", err)
		} else {
			recordingStorage = storage
		}
	}

	// Initialize the call session manager
	callService := services.NewVideoCallService(services.VideoCallConfig{
		InvitationTimeout: invitationTimeoutFromEnv(),
		RecordingStorage:  recordingStorage,
		Events:            socketServer,
	})

	// Sweep expired invitations periodically
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			callService.CleanupExpiredInvitations()
		}
	}()

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to TuCita")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterRecommendationRoutes(r, recommendationService)
	routes.RegisterVideoCallRoutes(r, callService)
	r.Handle("/socket.io/", socketServer.Handler())

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}

// invitationTimeoutFromEnv reads INVITATION_TIMEOUT_SECONDS, falling back to
// the service default when unset or invalid.
func invitationTimeoutFromEnv() time.Duration {
	raw := os.Getenv("INVITATION_TIMEOUT_SECONDS")
	if raw == "" {
		return 0
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		log.Printf("Ignoring invalid INVITATION_TIMEOUT_SECONDS=%q", raw)
		return 0
	}
	return time.Duration(seconds) * time.Second
}
