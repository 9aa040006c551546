// szaserv serves a directory of zipped animation archives over HTTP:
// animated GIFs, single-frame PNGs and an HTML index.
package main

import (
	"flag"
	"net/http"
	"os"

	"badc0de.net/pkg/flagutil/v1"

	"github.com/common-nighthawk/go-figure"
	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gopkg.in/yaml.v2"

	"badc0de.net/pkg/go-sza/web"
)

var (
	configPath    = flag.String("config", "", "path to a yaml config file; flags override it")
	listenAddress = flag.String("listen_address", "", "http listen address for szaserv")
	animDir       = flag.String("anim_dir", "", "directory with .sza archives to serve")
)

type config struct {
	ListenAddress string `yaml:"listen_address"`
	AnimDir       string `yaml:"anim_dir"`
}

func readConfig() config {
	// Defaults, overridden by the config file, overridden by flags.
	c := config{
		ListenAddress: ":8080",
		AnimDir:       "datafiles",
	}
	if *configPath != "" {
		f, err := os.Open(*configPath)
		if err != nil {
			glog.Fatalf("could not open config: %v", err)
		}
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(&c); err != nil {
			glog.Fatalf("could not parse config: %v", err)
		}
	}
	if *listenAddress != "" {
		c.ListenAddress = *listenAddress
	}
	if *animDir != "" {
		c.AnimDir = *animDir
	}
	return c
}

func main() {
	flagutil.Parse()

	figure.NewFigure("szaserv", "", true).Print()

	c := readConfig()

	store, err := web.LoadDir(c.AnimDir)
	if err != nil {
		glog.Fatalf("could not load animations from %q: %v", c.AnimDir, err)
	}
	glog.Infof("serving %d animations from %q", len(store.Names()), c.AnimDir)

	r := mux.NewRouter()
	web.NewHandler(store).RegisterRoutes(r)

	glog.Infof("szaserv now listening on %s", c.ListenAddress)
	glog.Fatal(http.ListenAndServe(c.ListenAddress, handlers.CombinedLoggingHandler(os.Stdout, r)))
}
