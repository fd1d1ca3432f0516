package export

import (
	"fmt"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/clinicasmiley/api-admin/internal/gastos"
	"github.com/clinicasmiley/api-admin/internal/liquidacion"
)

// Diseño fijo de columnas del reporte de liquidaciones: una fila por
// detalle del lote.
var encabezadosLiquidaciones = map[string]string{
	"A1": "Referencia",
	"B1": "Profesional",
	"C1": "Fecha Liquidación",
	"D1": "Paciente",
	"E1": "Servicio",
	"F1": "Sesiones",
	"G1": "Valor Bruto",
	"H1": "Costo Laboratorio",
	"I1": "Valor Neto",
	"J1": "Porcentaje",
	"K1": "Valor a Pagar",
}

func construirLibroLiquidaciones(lotes []liquidacion.Liquidacion) *excelize.File {
	file := excelize.NewFile()
	sheet := "Liquidaciones"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range encabezadosLiquidaciones {
		file.SetCellValue(sheet, k, v)
	}

	fila := 2
	for _, lote := range lotes {
		for _, d := range lote.Detalles {
			file.SetCellValue(sheet, fmt.Sprintf("A%v", fila), lote.Referencia)
			file.SetCellValue(sheet, fmt.Sprintf("B%v", fila), lote.Profesional)
			file.SetCellValue(sheet, fmt.Sprintf("C%v", fila), lote.FechaLiquidacion.Format("2006-01-02"))
			file.SetCellValue(sheet, fmt.Sprintf("D%v", fila), d.Paciente)
			file.SetCellValue(sheet, fmt.Sprintf("E%v", fila), d.Servicio)
			file.SetCellValue(sheet, fmt.Sprintf("F%v", fila), d.Sesiones)
			file.SetCellValue(sheet, fmt.Sprintf("G%v", fila), d.ValorBruto)
			file.SetCellValue(sheet, fmt.Sprintf("H%v", fila), d.CostoLaboratorio)
			file.SetCellValue(sheet, fmt.Sprintf("I%v", fila), d.ValorNeto)
			file.SetCellValue(sheet, fmt.Sprintf("J%v", fila), d.Porcentaje)
			file.SetCellValue(sheet, fmt.Sprintf("K%v", fila), d.ValorAPagar)
			fila++
		}
	}
	return file
}

var encabezadosGastos = map[string]string{
	"A1": "Fecha",
	"B1": "Concepto",
	"C1": "Proveedor",
	"D1": "Tipo",
	"E1": "Valor",
	"F1": "Responsable",
	"G1": "Comentario",
}

func construirLibroGastos(lista []gastos.Gasto) *excelize.File {
	file := excelize.NewFile()
	sheet := "Gastos"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range encabezadosGastos {
		file.SetCellValue(sheet, k, v)
	}

	for i, g := range lista {
		fila := i + 2
		file.SetCellValue(sheet, fmt.Sprintf("A%v", fila), g.Fecha.Format("2006-01-02"))
		file.SetCellValue(sheet, fmt.Sprintf("B%v", fila), g.Concepto)
		file.SetCellValue(sheet, fmt.Sprintf("C%v", fila), g.Proveedor)
		file.SetCellValue(sheet, fmt.Sprintf("D%v", fila), g.Tipo)
		file.SetCellValue(sheet, fmt.Sprintf("E%v", fila), g.Valor)
		file.SetCellValue(sheet, fmt.Sprintf("F%v", fila), g.Responsable)
		file.SetCellValue(sheet, fmt.Sprintf("G%v", fila), g.Comentario)
	}
	return file
}
