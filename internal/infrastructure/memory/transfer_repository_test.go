package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/warehouse-ops/internal/domain/entity"
	"github.com/tu-usuario/warehouse-ops/internal/infrastructure/memory"
)

func TestTransferRepository_AppendYConsulta(t *testing.T) {
	repo := memory.NewTransferRepository()
	assert.Equal(t, 0, repo.Count())
	assert.Nil(t, repo.GetByID("TR-0001"))

	repo.Append(&entity.Transfer{ID: "TR-0001", BatchID: "lote-a"})
	repo.Append(&entity.Transfer{ID: "TR-0002", BatchID: "lote-a"})
	repo.Append(&entity.Transfer{ID: "TR-0003"})

	assert.Equal(t, 3, repo.Count())
	require.NotNil(t, repo.GetByID("TR-0002"))
	assert.Len(t, repo.All(), 3)
	assert.Equal(t, "TR-0001", repo.All()[0].ID, "orden de creación")

	assert.Len(t, repo.ByBatch("lote-a"), 2)
	assert.Empty(t, repo.ByBatch("lote-x"))
	assert.Empty(t, repo.ByBatch(""), "los traslados individuales no forman un lote consultable")
}

func TestAlertRepository_ActiveFor(t *testing.T) {
	repo := memory.NewAlertRepository()
	assert.Nil(t, repo.ActiveFor("BR-001", "p1"))

	repo.Append(&entity.ReorderAlert{ID: "a1", WarehouseID: "BR-001", ProductID: "p1", Status: entity.AlertStatusResolved})
	repo.Append(&entity.ReorderAlert{ID: "a2", WarehouseID: "BR-001", ProductID: "p1", Status: entity.AlertStatusActive})
	repo.Append(&entity.ReorderAlert{ID: "a3", WarehouseID: "BR-002", ProductID: "p1", Status: entity.AlertStatusActive})

	got := repo.ActiveFor("BR-001", "p1")
	require.NotNil(t, got)
	assert.Equal(t, "a2", got.ID)

	require.NotNil(t, repo.GetByID("a3"))
	assert.Len(t, repo.All(), 3)
}
