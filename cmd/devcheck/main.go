package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fulldump/box"
	"github.com/fulldump/goconfig"
	g "github.com/reoring/goskema/dsl"

	"github.com/fulldump/devcheck"
	"github.com/fulldump/devcheck/api"
	"github.com/fulldump/devcheck/configuration"
	"github.com/fulldump/devcheck/service"
)

var VERSION = "dev"

var banner = `
 ___  ____ _  _ ____ _  _ ____ ____ _  _
 |  \ |___ |  | |    |__| |___ |    |_/
 |__/ |___  \/  |___ |  | |___ |___ | \_
                      version ` + VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", VERSION)
		return
	}

	fmt.Println(banner)

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	cond := devcheck.MatchEnvironment(map[string]string{
		c.EnvName: c.EnvPattern,
	}, devcheck.Environ())

	item, err := g.Object().
		Field(c.IdField, g.StringOf[string]()).
		Field("name", g.StringOf[string]()).
		Field("age", g.IntOf[int]()).
		Require(c.IdField).
		UnknownStrip().
		Build()
	if err != nil {
		log.Println("ERROR:", err.Error())
		os.Exit(-1)
	}

	b := api.Build(service.NewService(cond, item, c.IdField), VERSION)
	b.WithInterceptors(
		api.AccessLog(log.New(os.Stdout, "ACCESS: ", log.Lshortfile)),
		box.RecoverFromPanic,
		api.PrettyErrorInterceptor,
	)

	s := &http.Server{
		Addr:    c.HttpAddr,
		Handler: box.Box2Http(b),
	}

	ln, err := net.Listen("tcp", c.HttpAddr)
	if err != nil {
		log.Println("ERROR:", err.Error())
		os.Exit(-1)
	}
	log.Println("listening on", c.HttpAddr)
	log.Println("validation enabled:", cond())

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		for {
			sig := <-signalChan
			fmt.Println("Signal received", sig.String())
			s.Shutdown(context.Background())
		}
	}()

	wg := &sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		err := s.Serve(ln)
		if err != nil {
			fmt.Println(err.Error())
		}
	}()

	wg.Wait()
}
