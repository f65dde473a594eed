package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/model"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/repository"
)

// exportHeader is the fixed column order of candidate exports. Both the CSV
// and the XLSX writer emit exactly these columns in this order so a sheet and
// a flat file of the same snapshot line up row for row.
var exportHeader = []string{
	"Nom",
	"Prénom",
	"Email",
	"Téléphone",
	"Université",
	"Niveau",
	"Genre",
	"Compétences techniques",
	"Compétences métier",
	"Région",
	"Équipe",
	"Rôle",
	"Statut équipe",
}

// ExportService produces flat candidate exports for the organizing committee.
type ExportService interface {
	ExportCandidatesCSV(ctx context.Context) (*bytes.Buffer, string, error)
	ExportCandidatesXLSX(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates the ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ExportCandidatesCSV renders every candidate as one CSV row. Every field is
// wrapped in double quotes with embedded quotes doubled, unconditionally, so
// commas and line breaks inside free-text fields never break a row and the
// output stays byte-stable for spreadsheet tooling.
func (s *exportService) ExportCandidatesCSV(ctx context.Context) (*bytes.Buffer, string, error) {
	rows, err := s.collectRows(ctx)
	if err != nil {
		return nil, "", err
	}

	buf := &bytes.Buffer{}
	writeCSVRow(buf, exportHeader)
	for _, row := range rows {
		writeCSVRow(buf, row)
	}

	return buf, exportFilename("csv"), nil
}

// writeCSVRow emits one record with unconditional quote wrapping.
func writeCSVRow(buf *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(f, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteString("\r\n")
}

// ExportCandidatesXLSX renders the same rows as a spreadsheet.
func (s *exportService) ExportCandidatesXLSX(ctx context.Context) (*bytes.Buffer, string, error) {
	rows, err := s.collectRows(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Candidats"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	header := make([]interface{}, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, "", err
	}

	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, "", err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("xlsx export failed", zap.Error(err))
		return nil, "", err
	}

	return buf, exportFilename("xlsx"), nil
}

// collectRows joins every profile with its team affiliation.
func (s *exportService) collectRows(ctx context.Context) ([][]string, error) {
	profiles, err := s.repo.Profile.ListAll(ctx)
	if err != nil {
		s.logger.Error("list profiles failed", zap.Error(err))
		return nil, err
	}

	teams, err := s.repo.Team.ListAll(ctx)
	if err != nil {
		s.logger.Error("list teams failed", zap.Error(err))
		return nil, err
	}

	teamByID := make(map[string]*model.Team, len(teams))
	for i := range teams {
		teamByID[teams[i].TeamID] = &teams[i]
	}

	rows := make([][]string, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]

		teamName, teamRole, teamStatus := "", "", ""
		if p.CurrentTeamID != nil {
			if t, ok := teamByID[*p.CurrentTeamID]; ok {
				teamName = t.Name
				teamStatus = string(t.Status)
			}
		}
		if p.TeamRole != nil {
			teamRole = *p.TeamRole
		}

		rows = append(rows, []string{
			p.LastName,
			p.FirstName,
			p.Email,
			p.Phone,
			p.University,
			p.Level,
			p.Gender,
			strings.Join(p.TechSkills, "; "),
			strings.Join(p.MetierSkills, "; "),
			p.Region,
			teamName,
			teamRole,
			teamStatus,
		})
	}

	return rows, nil
}

func exportFilename(ext string) string {
	return fmt.Sprintf("candidats_%s.%s", time.Now().Format("2006-01-02"), ext)
}
