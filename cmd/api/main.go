package main

import (
	"fmt"
	"net/http"

	"github.com/guardian-payroll/backend-go/internal/config"
	appHTTP "github.com/guardian-payroll/backend-go/internal/handler/http"
	"github.com/guardian-payroll/backend-go/internal/pkg/database"
	"github.com/guardian-payroll/backend-go/internal/pkg/jwt"
	"github.com/guardian-payroll/backend-go/internal/repository/postgresql"
	attendanceService "github.com/guardian-payroll/backend-go/internal/service/attendance"
	authService "github.com/guardian-payroll/backend-go/internal/service/auth"
	employeeService "github.com/guardian-payroll/backend-go/internal/service/employee"
	loanService "github.com/guardian-payroll/backend-go/internal/service/loan"
	locationService "github.com/guardian-payroll/backend-go/internal/service/location"
	payrollService "github.com/guardian-payroll/backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	locationRepo := postgresql.NewLocationRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	loanRepo := postgresql.NewLoanRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	locationSvc := locationService.NewLocationService(locationRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, locationRepo)
	loanSvc := loanService.NewLoanService(loanRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, attendanceRepo, loanRepo, cfg.Payroll)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	locationHandler := appHTTP.NewLocationHandler(locationSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	loanHandler := appHTTP.NewLoanHandler(loanSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		employeeHandler,
		locationHandler,
		attendanceHandler,
		loanHandler,
		payrollHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
