package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	kcf "github.com/taskhive/taskhive/pkg/configs/server"
	kpg "github.com/taskhive/taskhive/pkg/db/postgres"

	rediscache "github.com/taskhive/taskhive/pkg/cache/redis"
	"github.com/taskhive/taskhive/pkg/utils/echoutil"
	"github.com/taskhive/taskhive/pkg/utils/filewatch"

	"github.com/taskhive/taskhive/cmd/taskhived/handlers"
)

const serviceName = "taskhive-api"

func main() {

	configPath := flag.String("config-path", "", "server config path")
	loglevel := flag.String("loglevel", "info", "log level. debug|info|warn|error|off")
	flag.Parse()

	startedAt := time.Now()

	e := echo.New()
	e.Pre(middleware.AddTrailingSlash())

	// set log
	echoutil.SetLevel(e, *loglevel)
	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		e.DefaultHTTPErrorHandler(err, ctx)
		e.Logger.Error(err)
	}
	e.Use(echoutil.LogHandlerFunc)

	// read configfile
	conf, err := kcf.LoadServerConfig(*configPath)
	if err != nil {
		log.Fatalf("can not read configration: %s", err)
	}

	// restart (by the container runtime) when the mounted config changes
	{
		ctx, cancel, err := filewatch.UntilModifyContext(context.Background(), *configPath)
		if err != nil {
			log.Fatalf("can not watch configration: %s", err)
		}
		defer cancel()
		context.AfterFunc(ctx, func() {
			log.Println("config file is updated. quit to restart server.")
			graceful, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := e.Shutdown(graceful); err != nil {
				log.Printf("error on shutdown by config update: %s", err)
			}
		})
	}

	ctx := context.Background()
	db, err := kpg.New(ctx, conf.Database.URI())
	if err != nil {
		log.Fatalf("can not connect to database: %s", err)
	}
	defer db.Close()

	store := rediscache.New(conf.Cache.Addr(), conf.Cache.Password)
	defer store.Close()

	// handlers
	{
		tasks := db.Tasks()
		id := "id"

		e.GET("/api/tasks/", handlers.ListTasksHandler(tasks, store, conf.Cache.TTL()))
		e.POST("/api/tasks/", handlers.CreateTaskHandler(tasks, store))

		e.GET("/api/tasks/:id/", handlers.GetTaskHandler(tasks, id))
		e.PUT("/api/tasks/:id/", handlers.UpdateTaskHandler(tasks, store, id))
		e.DELETE("/api/tasks/:id/", handlers.DeleteTaskHandler(tasks, store, id))

		e.GET("/api/stats/", handlers.StatsHandler(tasks))
	}

	{
		e.GET("/health/", handlers.HealthHandler(serviceName, startedAt))
		e.GET("/ready/", handlers.ReadyHandler(db, store))
	}

	if conf.WebRoot != "" {
		e.Static("/", conf.WebRoot)
	}

	log.Println("registred routes:")
	for _, r := range e.Routes() {
		log.Println(r.Method, r.Path)
	}

	e.Logger.Fatal(e.Start(":" + conf.ServerPort))
}
