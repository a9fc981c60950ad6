package ledger_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venus-soft/venus-inventory-api/internal/application/ledger"
	"github.com/venus-soft/venus-inventory-api/internal/domain"
	"github.com/venus-soft/venus-inventory-api/internal/domain/entity"
	"github.com/venus-soft/venus-inventory-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// fakeStore emula el contrato del almacén relacional: fakeTxRunner serializa
// las transacciones completas (como lo haría el bloqueo de fila por ítem), y
// los repositorios protegen cada operación individual con el mutex de datos.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	mu   sync.Mutex // protege los mapas
	txMu sync.Mutex // serializa transacciones completas
	seq  int64

	items map[int64]*entity.Inventory
	adds  map[int64]*entity.Addition
	subs  map[int64]*entity.Subtraction
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		items: make(map[int64]*entity.Inventory),
		adds:  make(map[int64]*entity.Addition),
		subs:  make(map[int64]*entity.Subtraction),
	}
}

func (s *fakeStore) nextID() int64 {
	s.seq++
	return s.seq
}

func cloneItem(it *entity.Inventory) *entity.Inventory {
	if it == nil {
		return nil
	}
	cp := *it
	cp.CurrentStock = 0 // derivado, nunca almacenado
	return &cp
}

func cloneAdd(a *entity.Addition) *entity.Addition {
	cp := *a
	cp.Inventory = nil
	return &cp
}

func cloneSub(sb *entity.Subtraction) *entity.Subtraction {
	cp := *sb
	cp.Inventory = nil
	return &cp
}

type fakeInvRepo struct{ s *fakeStore }

func (r fakeInvRepo) Create(item *entity.Inventory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item.ID = r.s.nextID()
	r.s.items[item.ID] = cloneItem(item)
	return nil
}

func (r fakeInvRepo) GetByID(id int64) (*entity.Inventory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return cloneItem(r.s.items[id]), nil
}

// GetByIDForUpdate: la exclusión por ítem la aporta fakeTxRunner, aquí solo se lee.
func (r fakeInvRepo) GetByIDForUpdate(id int64) (*entity.Inventory, error) {
	return r.GetByID(id)
}

func (r fakeInvRepo) List() ([]*entity.Inventory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Inventory, 0, len(r.s.items))
	for _, it := range r.s.items {
		out = append(out, cloneItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID }) // más recientes primero
	return out, nil
}

func (r fakeInvRepo) Update(item *entity.Inventory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[item.ID]; ok {
		r.s.items[item.ID] = cloneItem(item)
	}
	return nil
}

func (r fakeInvRepo) Delete(id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.items, id)
	return nil
}

type fakeAddRepo struct{ s *fakeStore }

func (r fakeAddRepo) Create(a *entity.Addition) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a.ID = r.s.nextID()
	r.s.adds[a.ID] = cloneAdd(a)
	return nil
}

func (r fakeAddRepo) GetByID(id int64) (*entity.Addition, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.adds[id]
	if !ok {
		return nil, nil
	}
	cp := cloneAdd(a)
	cp.Inventory = cloneItem(r.s.items[a.InventoryID])
	return cp, nil
}

func (r fakeAddRepo) List() ([]*entity.Addition, error) {
	return r.ListByInventory(0)
}

func (r fakeAddRepo) ListByInventory(inventoryID int64) ([]*entity.Addition, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Addition
	for _, a := range r.s.adds {
		if inventoryID != 0 && a.InventoryID != inventoryID {
			continue
		}
		cp := cloneAdd(a)
		cp.Inventory = cloneItem(r.s.items[a.InventoryID])
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r fakeAddRepo) SumQuantity(inventoryID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var sum int64
	for _, a := range r.s.adds {
		if a.InventoryID == inventoryID {
			sum += a.Quantity
		}
	}
	return sum, nil
}

func (r fakeAddRepo) Delete(id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.adds, id)
	return nil
}

func (r fakeAddRepo) DeleteByInventory(inventoryID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, a := range r.s.adds {
		if a.InventoryID == inventoryID {
			delete(r.s.adds, id)
		}
	}
	return nil
}

type fakeSubRepo struct{ s *fakeStore }

func (r fakeSubRepo) Create(sb *entity.Subtraction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sb.ID = r.s.nextID()
	r.s.subs[sb.ID] = cloneSub(sb)
	return nil
}

func (r fakeSubRepo) GetByID(id int64) (*entity.Subtraction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sb, ok := r.s.subs[id]
	if !ok {
		return nil, nil
	}
	cp := cloneSub(sb)
	cp.Inventory = cloneItem(r.s.items[sb.InventoryID])
	return cp, nil
}

func (r fakeSubRepo) List() ([]*entity.Subtraction, error) {
	return r.ListByInventory(0)
}

func (r fakeSubRepo) ListByInventory(inventoryID int64) ([]*entity.Subtraction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Subtraction
	for _, sb := range r.s.subs {
		if inventoryID != 0 && sb.InventoryID != inventoryID {
			continue
		}
		cp := cloneSub(sb)
		cp.Inventory = cloneItem(r.s.items[sb.InventoryID])
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r fakeSubRepo) SumQuantity(inventoryID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var sum int64
	for _, sb := range r.s.subs {
		if sb.InventoryID == inventoryID {
			sum += sb.Quantity
		}
	}
	return sum, nil
}

func (r fakeSubRepo) Delete(id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.subs, id)
	return nil
}

func (r fakeSubRepo) DeleteByInventory(inventoryID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, sb := range r.s.subs {
		if sb.InventoryID == inventoryID {
			delete(r.s.subs, id)
		}
	}
	return nil
}

type fakeTxRunner struct{ s *fakeStore }

func (r fakeTxRunner) Run(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	addRepo repository.AdditionRepository,
	subRepo repository.SubtractionRepository,
) error) error {
	// Como un nivel de aislamiento serializable: una transacción a la vez.
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()
	return fn(fakeInvRepo{r.s}, fakeAddRepo{r.s}, fakeSubRepo{r.s})
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newLedger() (*ledger.UseCase, *fakeStore) {
	s := newFakeStore()
	uc := ledger.NewUseCase(fakeTxRunner{s}, fakeInvRepo{s}, fakeAddRepo{s}, fakeSubRepo{s})
	return uc, s
}

func crearItem(t *testing.T, uc *ledger.UseCase, name string) *entity.Inventory {
	t.Helper()
	item, err := uc.CreateInventory(context.Background(), ledger.ItemInput{
		Name: name, FNo: "F1", Pack: "Box", Unit: "pcs",
	})
	require.NoError(t, err)
	return item
}

func txInput(inventoryID, quantity int64) ledger.TransactionInput {
	return ledger.TransactionInput{
		InventoryID: inventoryID,
		Quantity:    quantity,
		Price:       decimal.NewFromInt(10),
		Vendor:      "V",
		Phone:       "123",
	}
}

func stockDe(t *testing.T, uc *ledger.UseCase, id int64) int64 {
	t.Helper()
	stock, err := uc.CurrentStock(context.Background(), id)
	require.NoError(t, err)
	return stock
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario base y balance corrido
// ──────────────────────────────────────────────────────────────────────────────

func TestEscenarioBase_AltasYSalidas(t *testing.T) {
	uc, _ := newLedger()
	ctx := context.Background()

	item := crearItem(t, uc, "Widget")
	assert.Equal(t, int64(0), stockDe(t, uc, item.ID), "un ítem nuevo tiene stock 0")

	add, err := uc.RecordAddition(ctx, txInput(item.ID, 50))
	require.NoError(t, err)
	assert.Equal(t, int64(50), stockDe(t, uc, item.ID))
	require.NotNil(t, add.Inventory, "el alta devuelve el ítem dueño embebido")
	assert.Equal(t, int64(50), add.Inventory.CurrentStock)

	_, err = uc.RecordSubtraction(ctx, txInput(item.ID, 20))
	require.NoError(t, err)
	assert.Equal(t, int64(30), stockDe(t, uc, item.ID))

	_, err = uc.RecordSubtraction(ctx, txInput(item.ID, 40))
	require.Error(t, err, "una salida mayor al stock debe rechazarse")

	var insErr *domain.InsufficientStockError
	require.True(t, errors.As(err, &insErr))
	assert.Equal(t, int64(30), insErr.Available)
	assert.Equal(t, int64(40), insErr.Requested)
	assert.Equal(t, int64(30), stockDe(t, uc, item.ID), "el rechazo no deja ningún registro")
}

func TestBalanceCorrido_CoincideConHistorial(t *testing.T) {
	uc, _ := newLedger()
	ctx := context.Background()
	item := crearItem(t, uc, "Tornillo")

	// (cantidad, esSalida); las salidas imposibles se omiten de la secuencia
	pasos := []struct {
		qty    int64
		salida bool
	}{
		{100, false}, {30, true}, {5, true}, {12, false}, {77, true}, {1, false}, {1, true},
	}

	var esperado int64
	for i, p := range pasos {
		var err error
		if p.salida {
			_, err = uc.RecordSubtraction(ctx, txInput(item.ID, p.qty))
			esperado -= p.qty
		} else {
			_, err = uc.RecordAddition(ctx, txInput(item.ID, p.qty))
			esperado += p.qty
		}
		require.NoError(t, err, "paso %d", i)
		assert.Equal(t, esperado, stockDe(t, uc, item.ID),
			"tras el paso %d el stock debe igualar la suma corrida del historial", i)
	}

	// Verificación independiente contra las listas persistidas
	adds, err := uc.ListAdditionsByInventory(ctx, item.ID)
	require.NoError(t, err)
	subs, err := uc.ListSubtractionsByInventory(ctx, item.ID)
	require.NoError(t, err)
	var total int64
	for _, a := range adds {
		total += a.Quantity
	}
	for _, s := range subs {
		total -= s.Quantity
	}
	assert.Equal(t, esperado, total)
}

func TestStock_NuncaNegativoTrasRechazos(t *testing.T) {
	uc, _ := newLedger()
	ctx := context.Background()
	item := crearItem(t, uc, "Caja")

	_, err := uc.RecordSubtraction(ctx, txInput(item.ID, 1))
	require.ErrorIs(t, err, domain.ErrInsufficientStock, "sin historial el stock es 0, no indefinido")
	assert.Equal(t, int64(0), stockDe(t, uc, item.ID))
}

// ──────────────────────────────────────────────────────────────────────────────
// Referencial: ítems inexistentes
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_ItemInexistente_NotFoundSinEscritura(t *testing.T) {
	uc, s := newLedger()
	ctx := context.Background()

	_, err := uc.RecordAddition(ctx, txInput(999, 10))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.RecordSubtraction(ctx, txInput(999, 10))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Empty(t, s.adds, "no debe quedar ningún alta")
	assert.Empty(t, s.subs, "no debe quedar ninguna salida")
}

func TestCurrentStock_ItemInexistente_Cero(t *testing.T) {
	uc, _ := newLedger()
	// Sin chequeo de existencia: agregado ausente = 0
	assert.Equal(t, int64(0), stockDe(t, uc, 12345))
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia: dos salidas simultáneas no pueden sobregirar
// ──────────────────────────────────────────────────────────────────────────────

func TestSalidasConcurrentes_SoloUnaGana(t *testing.T) {
	uc, _ := newLedger()
	ctx := context.Background()
	item := crearItem(t, uc, "Disputado")

	_, err := uc.RecordAddition(ctx, txInput(item.ID, 10))
	require.NoError(t, err)

	var wg sync.WaitGroup
	resultados := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.RecordSubtraction(ctx, txInput(item.ID, 7))
			resultados <- err
		}()
	}
	wg.Wait()
	close(resultados)

	var exitos, rechazos int
	for err := range resultados {
		if err == nil {
			exitos++
			continue
		}
		require.ErrorIs(t, err, domain.ErrInsufficientStock,
			"el perdedor debe fallar por stock insuficiente, no por otra causa")
		rechazos++
	}

	assert.Equal(t, 1, exitos, "exactamente una salida debe confirmar")
	assert.Equal(t, 1, rechazos)
	assert.Equal(t, int64(3), stockDe(t, uc, item.ID), "10 - 7 = 3, nunca -4")
}

func TestItemsIndependientes_NoSeAfectan(t *testing.T) {
	uc, _ := newLedger()
	ctx := context.Background()
	a := crearItem(t, uc, "A")
	b := crearItem(t, uc, "B")

	_, err := uc.RecordAddition(ctx, txInput(a.ID, 100))
	require.NoError(t, err)
	_, err = uc.RecordSubtraction(ctx, txInput(a.ID, 40))
	require.NoError(t, err)

	assert.Equal(t, int64(60), stockDe(t, uc, a.ID))
	assert.Equal(t, int64(0), stockDe(t, uc, b.ID), "las operaciones sobre A nunca mueven el stock de B")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_EntradaInvalida(t *testing.T) {
	uc, _ := newLedger()
	ctx := context.Background()
	item := crearItem(t, uc, "Widget")

	casos := map[string]ledger.TransactionInput{
		"cantidad cero":     {InventoryID: item.ID, Quantity: 0, Vendor: "V", Phone: "1"},
		"cantidad negativa": {InventoryID: item.ID, Quantity: -5, Vendor: "V", Phone: "1"},
		"sin vendor":        {InventoryID: item.ID, Quantity: 5, Vendor: "  ", Phone: "1"},
		"sin phone":         {InventoryID: item.ID, Quantity: 5, Vendor: "V", Phone: ""},
		"precio negativo":   {InventoryID: item.ID, Quantity: 5, Vendor: "V", Phone: "1", Price: decimal.NewFromInt(-1)},
	}
	for nombre, in := range casos {
		_, err := uc.RecordAddition(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "alta: %s", nombre)
		_, err = uc.RecordSubtraction(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "salida: %s", nombre)
	}
}

func TestRecordAddition_FechaPorDefecto(t *testing.T) {
	uc, _ := newLedger()
	ctx := context.Background()
	item := crearItem(t, uc, "Widget")

	antes := time.Now()
	add, err := uc.RecordAddition(ctx, txInput(item.ID, 5))
	require.NoError(t, err)
	assert.False(t, add.Date.Before(antes), "sin fecha explícita se usa el momento del registro")

	ayer := time.Now().Add(-24 * time.Hour)
	in := txInput(item.ID, 5)
	in.Date = &ayer
	add2, err := uc.RecordAddition(ctx, in)
	require.NoError(t, err)
	assert.True(t, add2.Date.Equal(ayer), "una fecha explícita se respeta")
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD de ítems
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateInventory_CamposRequeridos(t *testing.T) {
	uc, _ := newLedger()
	_, err := uc.CreateInventory(context.Background(), ledger.ItemInput{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetInventory_AdjuntaStock(t *testing.T) {
	uc, _ := newLedger()
	ctx := context.Background()
	item := crearItem(t, uc, "Widget")
	_, err := uc.RecordAddition(ctx, txInput(item.ID, 25))
	require.NoError(t, err)

	got, err := uc.GetInventory(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(25), got.CurrentStock)

	_, err = uc.GetInventory(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListInventory_StockPorItem(t *testing.T) {
	uc, _ := newLedger()
	ctx := context.Background()
	a := crearItem(t, uc, "A")
	b := crearItem(t, uc, "B")
	_, err := uc.RecordAddition(ctx, txInput(a.ID, 7))
	require.NoError(t, err)

	items, err := uc.ListInventory(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	porID := map[int64]int64{}
	for _, it := range items {
		porID[it.ID] = it.CurrentStock
	}
	assert.Equal(t, int64(7), porID[a.ID])
	assert.Equal(t, int64(0), porID[b.ID])
}

func TestUpdateInventory_SoloDescriptivos(t *testing.T) {
	uc, _ := newLedger()
	ctx := context.Background()
	item := crearItem(t, uc, "Widget")
	_, err := uc.RecordAddition(ctx, txInput(item.ID, 9))
	require.NoError(t, err)

	nuevoNombre := "Widget Pro"
	got, err := uc.UpdateInventory(ctx, item.ID, ledger.ItemUpdateInput{Name: &nuevoNombre})
	require.NoError(t, err)
	assert.Equal(t, "Widget Pro", got.Name)
	assert.Equal(t, "F1", got.FNo, "los campos no enviados se conservan")
	assert.Equal(t, int64(9), got.CurrentStock, "actualizar descripciones no toca el stock")

	_, err = uc.UpdateInventory(ctx, 999, ledger.ItemUpdateInput{Name: &nuevoNombre})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteInventory_CascadaDeHistorial(t *testing.T) {
	uc, s := newLedger()
	ctx := context.Background()
	item := crearItem(t, uc, "Widget")
	otro := crearItem(t, uc, "Otro")

	_, err := uc.RecordAddition(ctx, txInput(item.ID, 10))
	require.NoError(t, err)
	_, err = uc.RecordSubtraction(ctx, txInput(item.ID, 4))
	require.NoError(t, err)
	_, err = uc.RecordAddition(ctx, txInput(otro.ID, 3))
	require.NoError(t, err)

	// Un ítem con historial se elimina sin error; su historial cae con él.
	require.NoError(t, uc.DeleteInventory(ctx, item.ID))

	_, err = uc.GetInventory(ctx, item.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, s.adds, 1, "solo sobrevive el historial del otro ítem")
	assert.Empty(t, s.subs)

	assert.ErrorIs(t, uc.DeleteInventory(ctx, 999), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminación de transacciones
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteAddition_RechazadaSiSobregira(t *testing.T) {
	uc, _ := newLedger()
	ctx := context.Background()
	item := crearItem(t, uc, "Widget")

	add, err := uc.RecordAddition(ctx, txInput(item.ID, 10))
	require.NoError(t, err)
	_, err = uc.RecordSubtraction(ctx, txInput(item.ID, 8))
	require.NoError(t, err)

	// Quitar el alta de 10 dejaría el balance en -8
	err = uc.DeleteAddition(ctx, add.ID)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insErr *domain.InsufficientStockError
	require.True(t, errors.As(err, &insErr))
	assert.Equal(t, int64(2), insErr.Available)
	assert.Equal(t, int64(10), insErr.Requested)
	assert.Equal(t, int64(2), stockDe(t, uc, item.ID), "el alta sigue en el historial")
}

func TestDeleteAddition_PermitidaConHolgura(t *testing.T) {
	uc, _ := newLedger()
	ctx := context.Background()
	item := crearItem(t, uc, "Widget")

	add, err := uc.RecordAddition(ctx, txInput(item.ID, 10))
	require.NoError(t, err)
	_, err = uc.RecordAddition(ctx, txInput(item.ID, 20))
	require.NoError(t, err)

	require.NoError(t, uc.DeleteAddition(ctx, add.ID))
	assert.Equal(t, int64(20), stockDe(t, uc, item.ID))

	assert.ErrorIs(t, uc.DeleteAddition(ctx, 999), domain.ErrNotFound)
}

func TestDeleteSubtraction_SubeElStockDerivado(t *testing.T) {
	uc, _ := newLedger()
	ctx := context.Background()
	item := crearItem(t, uc, "Widget")

	_, err := uc.RecordAddition(ctx, txInput(item.ID, 10))
	require.NoError(t, err)
	sub, err := uc.RecordSubtraction(ctx, txInput(item.ID, 6))
	require.NoError(t, err)
	assert.Equal(t, int64(4), stockDe(t, uc, item.ID))

	// Borrar la salida cambia el stock derivado retroactivamente (comportamiento aceptado)
	require.NoError(t, uc.DeleteSubtraction(ctx, sub.ID))
	assert.Equal(t, int64(10), stockDe(t, uc, item.ID))

	assert.ErrorIs(t, uc.DeleteSubtraction(ctx, 999), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

func TestListados_ConItemEmbebido(t *testing.T) {
	uc, _ := newLedger()
	ctx := context.Background()
	item := crearItem(t, uc, "Widget")

	add, err := uc.RecordAddition(ctx, txInput(item.ID, 10))
	require.NoError(t, err)
	_, err = uc.RecordSubtraction(ctx, txInput(item.ID, 3))
	require.NoError(t, err)

	adds, err := uc.ListAdditions(ctx)
	require.NoError(t, err)
	require.Len(t, adds, 1)
	require.NotNil(t, adds[0].Inventory)
	assert.Equal(t, item.ID, adds[0].Inventory.ID)

	got, err := uc.GetAddition(ctx, add.ID)
	require.NoError(t, err)
	assert.Equal(t, add.ID, got.ID)

	_, err = uc.GetAddition(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	subs, err := uc.ListSubtractionsByInventory(ctx, item.ID)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, int64(3), subs[0].Quantity)
}
