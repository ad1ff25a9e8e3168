package students

import (
	"fmt"
	"net/http"
	"strings"

	"festival/storage"
	"festival/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// [GET] ExportStudentsXLSX
// @Summary Export students as XLSX
// @Description Download every student record as a spreadsheet, one row per student
// @Tags Students
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} map[string]string
// @Router /students/export [get]
// @Security Bearer
func ExportStudentsXLSX(c *gin.Context) {
	students, err := storage.Store.GetStudents(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrStudentsLoadFailed)
		return
	}

	xlsx := excelize.NewFile()
	sheet := "Students"
	index, err := xlsx.NewSheet(sheet)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrExportFailed)
		return
	}
	xlsx.SetActiveSheet(index)
	xlsx.DeleteSheet("Sheet1")

	headers := []string{"Code", "Name", "Team", "Year", "Points", "Events", "Registered", "Completed"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		xlsx.SetCellValue(sheet, cell, header)
	}

	for row, student := range students {
		values := []any{
			student.Code,
			student.Name,
			student.Team,
			student.Year,
			student.Points,
			strings.Join(student.Events, ", "),
			student.CompetitionsRegistered,
			student.CompetitionsCompleted,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			xlsx.SetCellValue(sheet, cell, value)
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", "students.xlsx"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := xlsx.Write(c.Writer); err != nil {
		response.Error(c, http.StatusInternalServerError, ErrExportFailed)
		return
	}
}
