package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Miguelll86/customer-segmentation/internal/config"
	"github.com/Miguelll86/customer-segmentation/internal/server"
)

var (
	port    = flag.Int("port", 0, "porta del servizio (config.toml ha precedenza se specifica port)")
	devMode = flag.Bool("dev", false, "modalità sviluppo")
	dataDir = flag.String("dataDir", "", "directory dati (sovrascrive il file di configurazione)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Segmenter - analisi arrivi e segmenti")
	fmt.Println("==========================================")

	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("caricamento configurazione fallito, uso i default: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	// An explicit port in config.toml wins over the flag.
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	srv := server.NewServer(cfg)
	defer srv.Close()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)

	go func() {
		fmt.Printf("servizio in ascolto sulla porta %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("avvio del servizio fallito: %v", err)
		}
	}()

	fmt.Println("\npremi Ctrl+C per fermare il servizio...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nchiusura del servizio...")
}
