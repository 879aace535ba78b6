// Command report prints a quick operational snapshot to the terminal:
// orders grouped by status, plus variants running low on stock.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"arcoiris/internal/domain/model"
	"arcoiris/internal/infra/db"
	infraRepo "arcoiris/internal/infra/repository"

	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
)

func main() {
	threshold := flag.Int64("low-stock", 5, "stock threshold for the low stock table")
	flag.Parse()

	_ = godotenv.Load()

	gormDB, err := db.Connect()
	if err != nil {
		fmt.Fprintln(os.Stderr, "db connect:", err)
		os.Exit(1)
	}

	ctx := context.Background()
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	variantRepo := infraRepo.NewVariantGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)

	counts, err := orderRepo.CountByStatus(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "orders by status:", err)
		os.Exit(1)
	}

	fmt.Println("Orders by status")
	statusTable := tablewriter.NewTable(os.Stdout)
	statusTable.Header("Status", "Orders")
	var total int64
	for _, st := range []model.OrderStatus{
		model.OrderStatusPendiente,
		model.OrderStatusConfirmada,
		model.OrderStatusEnviada,
		model.OrderStatusEntregada,
		model.OrderStatusCancelada,
		model.OrderStatusReembolsada,
	} {
		n := counts[st]
		total += n
		statusTable.Append(string(st), strconv.FormatInt(n, 10))
	}
	statusTable.Footer("total", strconv.FormatInt(total, 10))
	if err := statusTable.Render(); err != nil {
		fmt.Fprintln(os.Stderr, "render:", err)
		os.Exit(1)
	}

	low, err := variantRepo.ListLowStock(ctx, *threshold)
	if err != nil {
		fmt.Fprintln(os.Stderr, "low stock:", err)
		os.Exit(1)
	}

	fmt.Printf("\nVariants at or below %d units\n", *threshold)
	lowTable := tablewriter.NewTable(os.Stdout)
	lowTable.Header("Variant", "Product", "Color", "Storage", "Stock")
	for _, v := range low {
		name := "?"
		if p, err := productRepo.FindByID(ctx, v.ProductID); err == nil {
			name = p.Name
		}
		lowTable.Append(
			strconv.FormatInt(v.ID, 10),
			name,
			v.Color,
			v.Storage,
			strconv.FormatInt(v.Stock, 10),
		)
	}
	if err := lowTable.Render(); err != nil {
		fmt.Fprintln(os.Stderr, "render:", err)
		os.Exit(1)
	}
}
