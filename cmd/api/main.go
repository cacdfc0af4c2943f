package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rcc-dimension/attendance-backend-go/internal/config"
	appHTTP "github.com/rcc-dimension/attendance-backend-go/internal/handler/http"
	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/imagestore"
	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/jwtoken"
	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/sheetdb"
	attendanceService "github.com/rcc-dimension/attendance-backend-go/internal/service/attendance"
	authService "github.com/rcc-dimension/attendance-backend-go/internal/service/auth"
	directoryService "github.com/rcc-dimension/attendance-backend-go/internal/service/directory"
	leaveService "github.com/rcc-dimension/attendance-backend-go/internal/service/leave"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	ctx := context.Background()

	var store sheetdb.Store
	switch cfg.Sheets.Backend {
	case "google":
		creds, err := cfg.ServiceAccountJSON()
		if err != nil {
			log.Fatal("Failed to assemble Google credentials: ", err)
		}
		store, err = sheetdb.NewGoogleStore(ctx, creds, cfg.Sheets.SpreadsheetID)
		if err != nil {
			log.Fatal("Failed to initialize Google Sheets client: ", err)
		}
	case "xlsx":
		store, err = sheetdb.NewXLSXStore(cfg.Sheets.XLSXPath)
		if err != nil {
			log.Fatal("Failed to open workbook: ", err)
		}
	default:
		log.Fatal("Unsupported sheets backend: ", cfg.Sheets.Backend)
	}

	var uploader imagestore.Uploader
	switch cfg.Storage.Type {
	case "cloudinary":
		uploader, err = imagestore.NewCloudinaryUploader(
			cfg.Cloudinary.CloudName,
			cfg.Cloudinary.APIKey,
			cfg.Cloudinary.APISecret,
		)
		if err != nil {
			log.Fatal("Failed to initialize Cloudinary: ", err)
		}
	case "local":
		uploader, err = imagestore.NewLocalUploader(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage: ", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	tokenTTL, err := time.ParseDuration(cfg.JWT.Expiration)
	if err != nil {
		log.Fatal("Invalid JWT_EXPIRATION_TIME: ", err)
	}
	tokenService := jwtoken.New(cfg.JWT.Secret, tokenTTL)

	authSvc := authService.NewAuthService(store, tokenService)
	directorySvc := directoryService.NewDirectoryService(store)
	attendanceSvc := attendanceService.NewAttendanceService(store, uploader)
	leaveSvc := leaveService.NewLeaveService(store)

	router := appHTTP.NewRouter(
		tokenService,
		appHTTP.NewAuthHandler(authSvc, tokenService),
		appHTTP.NewDirectoryHandler(directorySvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewLeaveHandler(leaveSvc),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server running on port", cfg.App.Port)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
