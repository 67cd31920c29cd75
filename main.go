package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hotel-manager/config"
	"hotel-manager/controllers"
	"hotel-manager/routes"
	"hotel-manager/services"
	"hotel-manager/utils"
)

func main() {
	os.Exit(run(os.Stdin, os.Stdout))
}

func run(stdin io.Reader, stdout io.Writer) int {
	cfg := config.Load()

	var logOut io.Writer = os.Stderr
	if f, err := utils.OpenLogFile(cfg.LogDir); err != nil {
		log.Printf("⚠️  cannot open log dir %s: %v; logging to stderr", cfg.LogDir, err)
	} else {
		defer f.Close()
		logOut = f
		fmt.Fprintf(stdout, "\n Activity is logged to %s\n", f.Name())
	}
	utils.SetLogger(utils.NewDefaultLogger(utils.ParseLevel(cfg.LogLevel), logOut))

	// Archive is optional: without it checkouts still work, history does not.
	if err := config.ConnectDatabase(cfg.ArchiveDSN, logOut); err != nil {
		utils.LogError("❌ archive database connect failed: %v", err)
		fmt.Fprintf(stdout, "\n Warning: checkout history unavailable (%v)\n", err)
	} else if config.DB != nil {
		utils.LogInfo("✅ archive database ready")
	}
	defer config.CloseDatabase()

	records, err := services.OpenStore(cfg.DataFile)
	if err != nil {
		fmt.Fprintf(stdout, "\n Warning: %v\n Starting with empty data.\n", err)
	}

	// Flush on SIGINT/SIGTERM as well as on a normal exit.
	stopWatch := watchSignals(func(sig os.Signal) {
		utils.LogInfo("⚠️  %s received, saving records", sig)
		code := flush(records, stdout)
		config.CloseDatabase()
		os.Exit(code)
	})
	defer stopWatch()

	receipts := services.NewReceiptService(config.DB)
	frontDesk := controllers.NewFrontDeskController(records.Store, receipts)
	menu := routes.SetupMenu(frontDesk)

	menu.Run(utils.NewConsole(stdin, stdout))

	return flush(records, stdout)
}

func flush(records *services.RecordFile, stdout io.Writer) int {
	if err := records.Close(); err != nil {
		fmt.Fprintf(stdout, "\n Error: could not save data to %s: %v\n", records.Path, err)
		return 1
	}
	fmt.Fprintf(stdout, "\n Data saved successfully to %s\n", records.Path)
	return 0
}

// watchSignals calls onSignal when SIGINT or SIGTERM arrives. The returned
// stop func ends the watch and waits for the watcher goroutine to exit.
func watchSignals(onSignal func(os.Signal)) (stop func()) {
	quit := make(chan os.Signal, 1)
	done := make(chan struct{})
	exited := make(chan struct{})
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer close(exited)
		select {
		case sig := <-quit:
			onSignal(sig)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(quit)
		close(done)
		<-exited
	}
}
