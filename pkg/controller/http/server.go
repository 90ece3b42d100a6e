package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sstlab/vigia/pkg/usecase"
	"github.com/sstlab/vigia/pkg/utils/logging"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

type Options func(*Server)

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/companies", func(r chi.Router) {
			r.Get("/", s.listCompanies)
			r.Post("/", s.createCompany)
			r.Route("/{companyID}", func(r chi.Router) {
				r.Get("/", s.getCompany)
				r.Put("/", s.updateCompany)
				r.Delete("/", s.deleteCompany)
				r.Get("/employees", s.listEmployees)
				r.Post("/employees", s.createEmployee)
				r.Get("/sectors", s.listSectors)
				r.Post("/sectors", s.createSector)
				r.Get("/functions", s.listFunctions)
				r.Post("/functions", s.createFunction)
				r.Get("/inventories", s.listInventories)
				r.Post("/inventories", s.createInventory)
			})
		})
		r.Put("/employees/{id}", s.updateEmployee)
		r.Delete("/employees/{id}", s.deleteEmployee)
		r.Put("/sectors/{id}", s.updateSector)
		r.Delete("/sectors/{id}", s.deleteSector)
		r.Put("/functions/{id}", s.updateFunction)
		r.Delete("/functions/{id}", s.deleteFunction)

		r.Route("/segments", func(r chi.Router) {
			r.Get("/", s.listSegments)
			r.Post("/", s.createSegment)
			r.Put("/{id}", s.updateSegment)
			r.Delete("/{id}", s.deleteSegment)
			r.Get("/{id}/associations", s.listAssociations)
		})
		r.Route("/danger-sources", func(r chi.Router) {
			r.Get("/", s.listDangerSources)
			r.Post("/", s.createDangerSource)
			r.Put("/{id}", s.updateDangerSource)
			r.Delete("/{id}", s.deleteDangerSource)
		})
		r.Route("/protection-measures", func(r chi.Router) {
			r.Get("/", s.listProtectionMeasures)
			r.Post("/", s.createProtectionMeasure)
			r.Put("/{id}", s.updateProtectionMeasure)
			r.Delete("/{id}", s.deleteProtectionMeasure)
		})
		r.Route("/injuries", func(r chi.Router) {
			r.Get("/", s.listInjuries)
			r.Post("/", s.createInjury)
			r.Put("/{id}", s.updateInjury)
			r.Delete("/{id}", s.deleteInjury)
		})

		r.Route("/danger-groups", func(r chi.Router) {
			r.Get("/", s.listDangerGroups)
			r.Post("/", s.createDangerGroup)
			r.Put("/{id}", s.updateDangerGroup)
			r.Delete("/{id}", s.deleteDangerGroup)
			r.Get("/{id}/dangers", s.listDangersByGroup)
		})
		r.Route("/dangers", func(r chi.Router) {
			r.Get("/", s.listDangers)
			r.Post("/", s.createDanger)
			r.Put("/{id}", s.updateDanger)
			r.Delete("/{id}", s.deleteDanger)
		})

		r.Route("/norms", func(r chi.Router) {
			r.Get("/", s.listNorms)
			r.Post("/", s.createNorm)
			r.Get("/{id}", s.getNorm)
			r.Put("/{id}", s.updateNorm)
			r.Delete("/{id}", s.deleteNorm)
			r.Get("/{id}/details", s.listNormDetails)
			r.Post("/{id}/details", s.saveNormDetail)
		})
		r.Delete("/norm-details/{id}", s.deleteNormDetail)
		r.Post("/associations", s.createAssociation)
		r.Delete("/associations/{id}", s.deleteAssociation)

		r.Route("/inventories/{inventoryID}", func(r chi.Router) {
			r.Get("/", s.getInventory)
			r.Delete("/", s.deleteInventory)
			r.Put("/status", s.updateInventoryStatus)
			r.Post("/clone", s.cloneInventory)
			r.Post("/entries", s.saveEntry)
			r.Delete("/entries/{entryID}", s.deleteEntry)
			r.Post("/entries/{entryID}/clone", s.cloneEntry)
			r.Post("/suggest", s.suggestEntries)
			r.Get("/report", s.buildReport)
		})

		r.Post("/assist", s.assistChat)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
