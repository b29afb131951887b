// segmenter-batch runs the segmentation pipeline offline on a local
// arrivals file and prints a per-segment summary. It can also generate a
// random sample workbook for trying the pipeline out.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/xuri/excelize/v2"

	"github.com/Miguelll86/customer-segmentation/internal/importer"
	"github.com/Miguelll86/customer-segmentation/internal/ingest"
	"github.com/Miguelll86/customer-segmentation/internal/model"
)

func main() {
	input := flag.String("input", "", "file arrivi da analizzare (.xlsx o .csv)")
	jsonPath := flag.String("json", "", "scrivi il risultato completo in JSON su questo file")
	sample := flag.Int("sample", 0, "genera un file di esempio con N righe invece di analizzare")
	out := flag.String("out", "sample_arrivi.xlsx", "percorso del file di esempio generato")
	flag.Parse()

	if *sample > 0 {
		if err := writeSample(*out, *sample); err != nil {
			log.Fatalf("generazione esempio fallita: %v", err)
		}
		fmt.Printf("creato %s con %d righe\n", *out, *sample)
		return
	}

	if *input == "" {
		fmt.Fprintln(os.Stderr, "uso: segmenter-batch -input arrivi.xlsx [-json out.json] | -sample N [-out file.xlsx]")
		os.Exit(2)
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("lettura file fallita: %v", err)
	}
	table, err := ingest.DecodeFile(*input, data)
	if err != nil {
		log.Fatalf("file non valido: %v", err)
	}
	if table.Empty() {
		log.Fatalf("il file è vuoto")
	}

	bar := progressbar.Default(int64(len(table.Rows)), "scoring")
	result := importer.RunProgress(table, func(done, total int) {
		_ = bar.Set(done)
	})
	_ = bar.Finish()

	printSummary(result)

	if *jsonPath != "" {
		if err := writeJSON(*jsonPath, result); err != nil {
			log.Fatalf("scrittura JSON fallita: %v", err)
		}
		fmt.Printf("risultato completo scritto in %s\n", *jsonPath)
	}
}

func printSummary(result importer.Result) {
	fmt.Printf("\nrighe: %d totali, %d analizzate, %d scartate\n", result.TotalRows, result.Imported, result.Skipped)
	if result.Threshold != nil {
		fmt.Printf("soglia spesa top 25%%: %.2f\n", *result.Threshold)
	}

	counts := make(map[model.Segment]int)
	revenue := make(map[model.Segment]float64)
	for _, c := range result.Customers {
		counts[c.Segment]++
		if c.Revenue != nil {
			revenue[c.Segment] += *c.Revenue
		}
	}

	fmt.Println("\nsegmento     clienti   quota    revenue")
	for _, seg := range model.Segments {
		var pct float64
		if len(result.Customers) > 0 {
			pct = float64(counts[seg]) / float64(len(result.Customers)) * 100
		}
		fmt.Printf("%-12s %7d  %5.1f%%  %9.2f\n", seg, counts[seg], pct, revenue[seg])
	}
}

func writeJSON(path string, result importer.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Sample-data pools, the same spread a small city hotel would see.
var (
	sampleChannels   = []string{"corporate", "GDS", "Booking.com", "Expedia", "direct", "sito", "OTA", "phone"}
	sampleDays       = []string{"lun", "mar", "mer", "gio", "ven", "sab", "dom"}
	sampleCategories = []string{"Standard", "Superior", "Deluxe", "Junior Suite", "Suite"}
	sampleNights     = []int{1, 2, 3, 4, 5, 7}
	sampleGuests     = []int{1, 2, 3, 4, 5}
	sampleStays      = []int{0, 1, 2, 3, 5}
)

// writeSample generates a random arrivals workbook with the canonical
// headers, mirroring what the upload endpoint expects.
func writeSample(path string, n int) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []interface{}{
		"cliente_id", "data_arrivo", "numero_notti", "numero_ospiti", "canale",
		"giorno_arrivo", "storico_soggiorni", "spesa_media", "categoria_camera",
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		row := []interface{}{
			fmt.Sprintf("C%d", i+1000),
			fmt.Sprintf("2024-%02d-%02d", rand.Intn(12)+1, rand.Intn(28)+1),
			sampleNights[rand.Intn(len(sampleNights))],
			sampleGuests[rand.Intn(len(sampleGuests))],
			sampleChannels[rand.Intn(len(sampleChannels))],
			sampleDays[rand.Intn(len(sampleDays))],
			sampleStays[rand.Intn(len(sampleStays))],
			80 + rand.Float64()*270,
			sampleCategories[rand.Intn(len(sampleCategories))],
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
