package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lucasmt/monitoria/internal/app/controllers"
	"github.com/lucasmt/monitoria/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	schoolController *controllers.SchoolController,
	monitorController *controllers.MonitorController,
	studentController *controllers.StudentController,
	subjectController *controllers.SubjectController,
	gradeController *controllers.GradeController,
	observationController *controllers.ObservationController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.RequireSession())
	{
		authenticated.GET("/auth/me", authController.Me)

		authenticated.GET("/dashboard/stats", dashboardController.GetStats)

		// Admin-only checks for schools and monitors run in the service
		// layer, so a monitor probing these routes gets a 403.
		schools := authenticated.Group("/schools")
		{
			schools.GET("", schoolController.ListSchools)
			schools.POST("", schoolController.CreateSchool)
			schools.PUT("/:id", schoolController.UpdateSchool)
			schools.DELETE("/:id", schoolController.DeleteSchool)
		}

		monitors := authenticated.Group("/monitors")
		{
			monitors.GET("", monitorController.ListMonitors)
			monitors.POST("", monitorController.CreateMonitor)
			monitors.PUT("/:id", monitorController.UpdateMonitor)
			monitors.DELETE("/:id", monitorController.DeleteMonitor)
		}

		students := authenticated.Group("/students")
		{
			students.GET("", studentController.ListStudents)
			students.GET("/:id", studentController.GetStudent)
			students.POST("", studentController.CreateStudent)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)

			students.GET("/:id/grades", gradeController.ListGradesByStudent)
			students.GET("/:id/observations", observationController.ListObservationsByStudent)
		}

		subjects := authenticated.Group("/subjects")
		{
			subjects.GET("", subjectController.ListSubjects)
			subjects.POST("", subjectController.CreateSubject)
			subjects.PUT("/:id", subjectController.UpdateSubject)
			subjects.DELETE("/:id", subjectController.DeleteSubject)
		}

		grades := authenticated.Group("/grades")
		{
			grades.POST("", gradeController.CreateGrade)
			grades.PUT("/:id", gradeController.UpdateGrade)
			grades.DELETE("/:id", gradeController.DeleteGrade)
		}

		observations := authenticated.Group("/observations")
		{
			observations.POST("", observationController.CreateObservation)
			observations.PUT("/:id", observationController.UpdateObservation)
			observations.DELETE("/:id", observationController.DeleteObservation)
		}
	}
}
