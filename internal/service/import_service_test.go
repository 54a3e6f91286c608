package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Farhaan96/CollisionOS-sub009/internal/domain"
	"github.com/Farhaan96/CollisionOS-sub009/internal/service"
	"github.com/Farhaan96/CollisionOS-sub009/mocks"
)

const markupDoc = `<EstimateDocument>
  <DocumentInfo><DocumentNum>EST-5</DocumentNum><VendorCode>CCC ONE</VendorCode></DocumentInfo>
  <ClaimInfo><ClaimNum>CLM-2</ClaimNum></ClaimInfo>
</EstimateDocument>`

func TestImport_MarkupSuccess(t *testing.T) {
	repo := new(mocks.MockEstimateRepository)
	storage := new(mocks.MockObjectStorage)
	repo.On("CreateImport", mock.Anything, mock.Anything).Return(nil)
	repo.On("SaveResult", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := service.NewImportService(repo, storage)
	out, err := svc.Import(context.Background(), &service.ImportInput{
		FileName: "est.xml",
		Raw:      []byte(markupDoc),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ImportStatusCompleted, out.Import.Status)
	assert.Equal(t, domain.FormatMarkup, out.Import.Format) // sniffed
	assert.Equal(t, "EST-5", out.Import.DocumentNumber)
	assert.Equal(t, "CLM-2", out.Import.ClaimNumber)
	assert.Equal(t, "ccc", out.Import.SourceSystem)
	require.NotNil(t, out.Result)
	repo.AssertExpectations(t)
}

func TestImport_ParseFailureMarkedFailed(t *testing.T) {
	repo := new(mocks.MockEstimateRepository)
	storage := new(mocks.MockObjectStorage)
	repo.On("CreateImport", mock.Anything, mock.Anything).Return(nil)
	repo.On("MarkFailed", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := service.NewImportService(repo, storage)
	out, err := svc.Import(context.Background(), &service.ImportInput{
		FileName: "bad.xml",
		Raw:      []byte("<EstimateDocument><Unterminated>"),
	})
	require.Error(t, err)
	assert.True(t, domain.IsMalformedDocument(err))

	require.NotNil(t, out)
	assert.Equal(t, domain.ImportStatusFailed, out.Import.Status)
	assert.Nil(t, out.Result)
	repo.AssertCalled(t, "MarkFailed", mock.Anything, out.Import.ID, mock.Anything)
}

func TestImport_ForcedFormat(t *testing.T) {
	repo := new(mocks.MockEstimateRepository)
	storage := new(mocks.MockObjectStorage)
	repo.On("CreateImport", mock.Anything, mock.Anything).Return(nil)
	repo.On("SaveResult", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := service.NewImportService(repo, storage)
	out, err := svc.Import(context.Background(), &service.ImportInput{
		FileName: "est.ems",
		Raw:      []byte("HDR|EST-7|Mitchell\n"),
		Format:   domain.FormatFlat,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.FormatFlat, out.Import.Format)
	assert.Equal(t, "mitchell", out.Import.SourceSystem)
}

func TestImport_RepoErrorPropagates(t *testing.T) {
	repo := new(mocks.MockEstimateRepository)
	storage := new(mocks.MockObjectStorage)
	repo.On("CreateImport", mock.Anything, mock.Anything).Return(errors.New("db down"))

	svc := service.NewImportService(repo, storage)
	_, err := svc.Import(context.Background(), &service.ImportInput{FileName: "x", Raw: []byte(markupDoc)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating import record")
}

func TestProcessImport_DownloadsParsesAndSaves(t *testing.T) {
	repo := new(mocks.MockEstimateRepository)
	storage := new(mocks.MockObjectStorage)
	imp := &domain.EstimateImport{
		StorageBucket: "uploads",
		StorageKey:    "est.xml",
		Format:        domain.FormatMarkup,
	}
	storage.On("Download", mock.Anything, "uploads", "est.xml").Return([]byte(markupDoc), nil)
	repo.On("SaveResult", mock.Anything, imp.ID, mock.Anything).Return(nil)

	svc := service.NewImportService(repo, storage)
	svc.ProcessImport(context.Background(), imp)

	repo.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestProcessImport_DownloadFailureMarksFailed(t *testing.T) {
	repo := new(mocks.MockEstimateRepository)
	storage := new(mocks.MockObjectStorage)
	imp := &domain.EstimateImport{StorageBucket: "uploads", StorageKey: "gone.xml"}
	storage.On("Download", mock.Anything, "uploads", "gone.xml").Return(nil, errors.New("not found"))
	repo.On("MarkFailed", mock.Anything, imp.ID, "not found").Return(nil)

	svc := service.NewImportService(repo, storage)
	svc.ProcessImport(context.Background(), imp)

	repo.AssertExpectations(t)
}
