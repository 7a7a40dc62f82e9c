package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/clockwork-hq/timeclock-backend-go/internal/config"
	appHTTP "github.com/clockwork-hq/timeclock-backend-go/internal/handler/http"
	"github.com/clockwork-hq/timeclock-backend-go/internal/pkg/cron"
	"github.com/clockwork-hq/timeclock-backend-go/internal/pkg/database"
	"github.com/clockwork-hq/timeclock-backend-go/internal/pkg/jwt"
	"github.com/clockwork-hq/timeclock-backend-go/internal/repository/postgresql"
	attendanceService "github.com/clockwork-hq/timeclock-backend-go/internal/service/attendance"
	authService "github.com/clockwork-hq/timeclock-backend-go/internal/service/auth"
	employeeService "github.com/clockwork-hq/timeclock-backend-go/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	adminRepo := postgresql.NewAdminRepository(db)
	txLocker := postgresql.NewTxLocker(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	empService := employeeService.NewEmployeeService(employeeRepo)
	attService := attendanceService.NewAttendanceService(
		attendanceRepo,
		employeeRepo,
		txLocker,
		cfg.Clock,
		attendanceService.SystemClock{},
	)
	admService := authService.NewAuthService(adminRepo, jwtService)

	kioskHandler := appHTTP.NewKioskHandler(attService, empService)
	authHandler := appHTTP.NewAuthHandler(admService)
	employeeHandler := appHTTP.NewEmployeeHandler(empService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attService)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, cfg.Clock).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		kioskHandler,
		authHandler,
		employeeHandler,
		attendanceHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
