package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/salesflowhq/salesflow/ent/enttest"
	"github.com/salesflowhq/salesflow/pkg/leads"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func setupService(t *testing.T) (*Service, int, func()) {
	client := enttest.Open(t, "sqlite3", "file:export?mode=memory&cache=shared&_fk=1")
	ctx := context.Background()

	company, err := client.Company.Create().SetName("Test Co").SetSlug("export-co").Save(ctx)
	require.NoError(t, err)

	leadService := leads.NewService(client, nil)
	seed := []leads.CreateLeadRequest{
		{Email: "vp@acme.com", FirstName: "Vic", LastName: "Park", CompanyName: "Acme", JobTitle: "VP of Sales", Source: "linkedin"},
		{Email: "dev@gmail.com", FirstName: "Dana", Source: "website"},
	}
	for _, req := range seed {
		_, err := leadService.Create(ctx, company.ID, 1, req)
		require.NoError(t, err)
	}

	return NewService(leadService), company.ID, func() { client.Close() }
}

func TestCSV(t *testing.T) {
	service, companyID, cleanup := setupService(t)
	defer cleanup()

	data, err := service.CSV(context.Background(), companyID, leads.ListLeadsRequest{})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 leads

	assert.Equal(t, "Email", records[0][1])
	assert.Equal(t, "vp@acme.com", records[1][1])
	assert.Equal(t, "VP of Sales", records[1][5])
	assert.Equal(t, "dev@gmail.com", records[2][1])
}

func TestCSV_Filtered(t *testing.T) {
	service, companyID, cleanup := setupService(t)
	defer cleanup()

	data, err := service.CSV(context.Background(), companyID, leads.ListLeadsRequest{Source: "linkedin"})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 2) // header + 1 lead
}

func TestExcel(t *testing.T) {
	service, companyID, cleanup := setupService(t)
	defer cleanup()

	data, err := service.Excel(context.Background(), companyID, leads.ListLeadsRequest{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Leads")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Email", rows[0][1])
	assert.Equal(t, "vp@acme.com", rows[1][1])
}
