// Package httpserver runs the PureText HTTP daemon with graceful shutdown.
//
//	srv := httpserver.New(
//	    httpserver.WithAddr("127.0.0.1:7878"),
//	    httpserver.WithShutdownTimeout(5*time.Second),
//	    httpserver.WithLogger(log),
//	)
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// Run blocks until ctx is cancelled or Shutdown is called and returns nil
// after a clean shutdown. Start failures wrap ErrStart and shutdown failures
// wrap ErrShutdown.
//
// Liveness and Readiness build the health check handlers mounted under /health.
package httpserver
