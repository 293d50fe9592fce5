package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/marketbase/commerce/internal/config"
	orderdomain "github.com/marketbase/commerce/internal/order/domain"
	productdomain "github.com/marketbase/commerce/internal/product/domain"
	userdomain "github.com/marketbase/commerce/internal/user/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewHTTPMetrics),
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) { s.RegisterRoutes() }),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, httpMetrics *HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(httpMetrics.Middleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(httpMetrics.Registry(), promhttp.HandlerOpts{})))

	return r
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	userSvc    userdomain.Service
	productSvc productdomain.Service
	orderSvc   orderdomain.Service
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	UserSvc    userdomain.Service
	ProductSvc productdomain.Service
	OrderSvc   orderdomain.Service
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		userSvc:    p.UserSvc,
		productSvc: p.ProductSvc,
		orderSvc:   p.OrderSvc,
	}
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) RegisterRoutes() {
	r := s.engine

	// -------- Users --------
	r.POST("/users", s.CreateUser)
	r.GET("/users", s.ListUsers)
	r.GET("/user/:id", s.GetUserByID)
	r.PUT("/users/:id", s.UpdateUser)
	r.DELETE("/user/:id", s.DeleteUser)

	// -------- Products --------
	r.POST("/products", s.CreateProduct)
	r.GET("/products", s.ListProducts)
	r.GET("/product/:id", s.GetProductByID)
	r.PUT("/product/:id", s.UpdateProduct)
	r.DELETE("/product/:id", s.DeleteProduct)

	// -------- Orders --------
	r.POST("/order", s.CreateOrder)
	r.GET("/orders", s.ListOrders)
	r.GET("/orders/user/:user_id", s.ListUserOrders)
	r.GET("/orders/:order_id/products", s.ListOrderProducts)
	r.PUT("/orders/:order_id/add_product/:product_id", s.AddProductToOrder)
	r.PUT("/orders/:order_id/remove_product/:product_id", s.RemoveProductFromOrder)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
