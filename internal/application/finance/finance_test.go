package finance_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obame-dev/editions-api/internal/application/dto"
	"github.com/obame-dev/editions-api/internal/application/finance"
	"github.com/obame-dev/editions-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake repository
// ──────────────────────────────────────────────────────────────────────────────

type fakeFinanceRepo struct {
	sales         []repository.SaleRow
	orders        []repository.OrderRow
	partnerOrders []repository.OrderRow
	royalties     []repository.RoyaltyRow
	partners      []repository.PartnerRow
	totalWorks    int
	partnerUsers  int

	monthlySalesCalls  int
	monthlyOrdersCalls int
}

func (f *fakeFinanceRepo) SalesInRange(_ context.Context, _, _ *time.Time) ([]repository.SaleRow, error) {
	return f.sales, nil
}

func (f *fakeFinanceRepo) OrdersInRange(_ context.Context, _, _ *time.Time) ([]repository.OrderRow, error) {
	return f.orders, nil
}

func (f *fakeFinanceRepo) PartnerOrdersInRange(_ context.Context, _, _ *time.Time) ([]repository.OrderRow, error) {
	return f.partnerOrders, nil
}

func (f *fakeFinanceRepo) RoyaltiesInRange(_ context.Context, _, _ *time.Time) ([]repository.RoyaltyRow, error) {
	return f.royalties, nil
}

func (f *fakeFinanceRepo) Partners(_ context.Context) ([]repository.PartnerRow, error) {
	return f.partners, nil
}

func (f *fakeFinanceRepo) CountWorks(_ context.Context) (int, error) {
	return f.totalWorks, nil
}

func (f *fakeFinanceRepo) CountUsersByRole(_ context.Context, _ string) (int, error) {
	return f.partnerUsers, nil
}

func (f *fakeFinanceRepo) SumSalesAmount(_ context.Context, _, _ time.Time) (decimal.Decimal, error) {
	f.monthlySalesCalls++
	return decimal.NewFromInt(100), nil
}

func (f *fakeFinanceRepo) CountOrdersBetween(_ context.Context, _, _ time.Time) (int, error) {
	f.monthlyOrdersCalls++
	return 2, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strptr(s string) *string { return &s }

func dtoPeriod(start, end string) dto.PeriodDTO {
	return dto.PeriodDTO{StartDate: start, EndDate: end}
}

func saleRow(workID, title string, qty int, amount string, discipline *string) repository.SaleRow {
	return repository.SaleRow{
		ID:             "sale-" + workID,
		WorkID:         workID,
		WorkTitle:      title,
		DisciplineName: discipline,
		Quantity:       qty,
		Amount:         dec(amount),
		CreatedAt:      time.Now(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Overview
// ──────────────────────────────────────────────────────────────────────────────

// Le CA global additionne ventes directes et commandes livrées ; une commande
// expédiée mais non livrée n'y entre pas.
func TestOverview_TotalRevenue_VentesPlusCommandesLivrees(t *testing.T) {
	repo := &fakeFinanceRepo{
		sales: []repository.SaleRow{
			saleRow("w1", "Maths 3e", 2, "100.00", strptr("Mathématiques")),
		},
		orders: []repository.OrderRow{
			{ID: "o1", Status: "DELIVERED", Total: dec("250.00"), CreatedAt: time.Now()},
			{ID: "o2", Status: "SHIPPED", Total: dec("999.00"), CreatedAt: time.Now()},
		},
	}
	uc := finance.New(repo, nil)

	out, err := uc.Overview(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.True(t, out.TotalRevenue.Equal(dec("350.00")),
		"CA attendu 350.00 (100 de ventes + 250 livrés), obtenu %s", out.TotalRevenue)
	assert.Equal(t, 2, out.TotalOrders, "toutes les commandes comptent dans totalOrders")
}

// Une commande sans total explicite vaut la somme prix × quantité de ses lignes.
func TestOverview_TotalDeriveDesLignes(t *testing.T) {
	repo := &fakeFinanceRepo{
		orders: []repository.OrderRow{
			{
				ID: "o1", Status: "DELIVERED", Total: decimal.Zero, CreatedAt: time.Now(),
				Items: []repository.OrderItemRow{
					{ID: "i1", WorkID: "w1", WorkTitle: "Maths 3e", Quantity: 3, Price: dec("10.00")},
					{ID: "i2", WorkID: "w2", WorkTitle: "Français", Quantity: 1, Price: dec("5.50")},
				},
			},
		},
	}
	uc := finance.New(repo, nil)

	out, err := uc.Overview(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.True(t, out.TotalRevenue.Equal(dec("35.50")), "3×10 + 1×5.50 = 35.50, obtenu %s", out.TotalRevenue)
	assert.Equal(t, 4, out.TotalItemsSold)
}

// disciplineRevenue ne couvre que les ventes directes : le CA des commandes
// livrées n'y apparaît pas, et la note de méthodologie le signale.
func TestOverview_DisciplineRevenue_VentesDirectesUniquement(t *testing.T) {
	repo := &fakeFinanceRepo{
		sales: []repository.SaleRow{
			saleRow("w1", "Maths 3e", 1, "100.00", strptr("Mathématiques")),
			saleRow("w2", "Atlas", 1, "40.00", nil), // œuvre sans discipline
		},
		orders: []repository.OrderRow{
			{
				ID: "o1", Status: "DELIVERED", Total: dec("500.00"), CreatedAt: time.Now(),
				Items: []repository.OrderItemRow{
					{ID: "i1", WorkID: "w1", WorkTitle: "Maths 3e", DisciplineName: strptr("Mathématiques"), Quantity: 5, Price: dec("100.00")},
				},
			},
		},
	}
	uc := finance.New(repo, nil)

	out, err := uc.Overview(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.True(t, out.DisciplineRevenue["Mathématiques"].Equal(dec("100.00")),
		"seule la vente directe compte, obtenu %s", out.DisciplineRevenue["Mathématiques"])
	assert.True(t, out.DisciplineRevenue["Non spécifié"].Equal(dec("40.00")))
	assert.NotEmpty(t, out.MethodologyNote)
}

// La tendance mensuelle couvre toujours les 6 derniers mois calendaires,
// indépendamment des bornes demandées.
func TestOverview_MonthlyTrends_ToujoursSixMois(t *testing.T) {
	repo := &fakeFinanceRepo{}
	uc := finance.New(repo, nil)

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2020, 1, 31, 23, 59, 59, 0, time.Local)
	out, err := uc.Overview(context.Background(), &start, &end)
	require.NoError(t, err)

	require.Len(t, out.MonthlyTrends, 6)
	assert.Equal(t, 6, repo.monthlySalesCalls)
	assert.Equal(t, 6, repo.monthlyOrdersCalls)

	// Dernier point = mois courant, libellé français.
	now := time.Now()
	labels := [...]string{"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
		"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre"}
	assert.Contains(t, out.MonthlyTrends[5].Month, labels[now.Month()-1])
	for _, tr := range out.MonthlyTrends {
		assert.True(t, tr.Revenue.Equal(dec("100")))
		assert.Equal(t, 2, tr.Orders)
	}
}

// Les commandes récentes sont plafonnées à 10 et le nom client retombe sur le
// partenaire puis sur N/A.
func TestOverview_RecentOrders_PlafondEtFallback(t *testing.T) {
	var orders []repository.OrderRow
	for i := 0; i < 12; i++ {
		orders = append(orders, repository.OrderRow{
			ID: "o" + string(rune('a'+i)), Status: "PENDING", Total: dec("10.00"),
			CreatedAt: time.Now().Add(-time.Duration(i) * time.Hour),
		})
	}
	orders[0].UserName = strptr("Claire Ondo")
	orders[1].PartnerName = strptr("Librairie du Centre")
	// orders[2] : aucune relation → N/A

	uc := finance.New(&fakeFinanceRepo{orders: orders}, nil)
	out, err := uc.Overview(context.Background(), nil, nil)
	require.NoError(t, err)

	require.Len(t, out.RecentOrders, 10)
	assert.Equal(t, "Claire Ondo", out.RecentOrders[0].CustomerName)
	assert.Equal(t, "Librairie du Centre", out.RecentOrders[1].CustomerName)
	assert.Equal(t, "N/A", out.RecentOrders[2].CustomerName)
}

// Le top des œuvres combine ventes directes et lignes livrées, trié par CA
// décroissant et plafonné à 5.
func TestOverview_TopWorks_CACombineTopCinq(t *testing.T) {
	sales := []repository.SaleRow{
		saleRow("w1", "Œuvre 1", 1, "50.00", nil),
		saleRow("w2", "Œuvre 2", 1, "10.00", nil),
		saleRow("w3", "Œuvre 3", 1, "30.00", nil),
		saleRow("w4", "Œuvre 4", 1, "20.00", nil),
		saleRow("w5", "Œuvre 5", 1, "5.00", nil),
		saleRow("w6", "Œuvre 6", 1, "1.00", nil),
	}
	orders := []repository.OrderRow{
		{
			ID: "o1", Status: "DELIVERED", Total: decimal.Zero, CreatedAt: time.Now(),
			Items: []repository.OrderItemRow{
				// w2 : 10 (vente) + 90 (livré) = 100 → passe en tête
				{ID: "i1", WorkID: "w2", WorkTitle: "Œuvre 2", Quantity: 9, Price: dec("10.00")},
			},
		},
		{
			ID: "o2", Status: "PENDING", Total: decimal.Zero, CreatedAt: time.Now(),
			Items: []repository.OrderItemRow{
				// non livrée : ignorée par le top de l'overview
				{ID: "i2", WorkID: "w6", WorkTitle: "Œuvre 6", Quantity: 100, Price: dec("10.00")},
			},
		},
	}

	uc := finance.New(&fakeFinanceRepo{sales: sales, orders: orders}, nil)
	out, err := uc.Overview(context.Background(), nil, nil)
	require.NoError(t, err)

	require.Len(t, out.TopWorks, 5)
	assert.Equal(t, "w2", out.TopWorks[0].WorkID)
	assert.True(t, out.TopWorks[0].Revenue.Equal(dec("100.00")))
	assert.Equal(t, 10, out.TopWorks[0].Quantity, "1 en vente directe + 9 livrés")
	assert.Equal(t, "w1", out.TopWorks[1].WorkID)
	for _, w := range out.TopWorks {
		assert.NotEqual(t, "w6", w.WorkID, "une commande non livrée ne classe pas l'œuvre")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Rapport des ventes
// ──────────────────────────────────────────────────────────────────────────────

// Le rapport des ventes compte toutes les commandes, quel que soit le statut,
// et itemsCount duplique itemCount sur chaque ligne.
func TestSalesReport_ToutesCommandesEtAliasItemsCount(t *testing.T) {
	repo := &fakeFinanceRepo{
		sales: []repository.SaleRow{
			saleRow("w1", "Maths 3e", 2, "60.00", strptr("Mathématiques")),
		},
		orders: []repository.OrderRow{
			{
				ID: "o1", Status: "PENDING", Total: decimal.Zero, CreatedAt: time.Now(),
				Items: []repository.OrderItemRow{
					{ID: "i1", WorkID: "w1", WorkTitle: "Maths 3e", DisciplineName: strptr("Mathématiques"), Quantity: 2, Price: dec("30.00")},
				},
			},
			{ID: "o2", Status: "CANCELLED", Total: dec("40.00"), CreatedAt: time.Now()},
		},
	}
	uc := finance.New(repo, nil)

	out, err := uc.SalesReport(context.Background(), dtoPeriod("2026-01-01", "2026-01-31"), nil, nil)
	require.NoError(t, err)

	// 60 (ventes) + 60 (o1) + 40 (o2, même annulée) = 160
	assert.True(t, out.TotalRevenue.Equal(dec("160.00")), "obtenu %s", out.TotalRevenue)
	assert.Equal(t, 2, out.TotalOrders)
	assert.Equal(t, 4, out.TotalItemsSold, "2 lignes de commande + 2 en vente directe")

	require.Len(t, out.Orders, 2)
	for _, o := range out.Orders {
		assert.Equal(t, o.ItemCount, o.ItemsCount, "itemsCount doit dupliquer itemCount")
	}

	// Panier moyen sur les commandes uniquement : (60+40)/2.
	assert.True(t, out.AverageOrderValue.Equal(dec("50.00")), "obtenu %s", out.AverageOrderValue)

	// Ventilation : ligne de commande + vente directe.
	assert.True(t, out.SalesByDiscipline["Mathématiques"].Equal(dec("120.00")))
}

// Les relations absentes d'une commande sortent en N/A, jamais en null.
func TestSalesReport_RelationsAbsentesEnNA(t *testing.T) {
	repo := &fakeFinanceRepo{
		orders: []repository.OrderRow{
			{
				ID: "o1", Status: "PENDING", Total: dec("10.00"), CreatedAt: time.Now(),
				Items: []repository.OrderItemRow{
					{ID: "i1", WorkID: "w1", WorkTitle: "Sans relations", Quantity: 1, Price: dec("10.00")},
				},
			},
		},
	}
	uc := finance.New(repo, nil)

	out, err := uc.SalesReport(context.Background(), dtoPeriod("", ""), nil, nil)
	require.NoError(t, err)

	require.Len(t, out.Orders, 1)
	o := out.Orders[0]
	assert.Equal(t, "N/A", o.CustomerName)
	assert.Equal(t, "N/A", o.User.Name)
	assert.Equal(t, "N/A", o.Partner.Name)
	require.Len(t, o.Items, 1)
	assert.Equal(t, "N/A", o.Items[0].Work.Discipline)
	assert.Equal(t, "N/A", o.Items[0].Work.Author)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rapport des droits
// ──────────────────────────────────────────────────────────────────────────────

// Invariant par bénéficiaire : total = payé + en attente ; totalPending somme
// les impayés et pendingPayments n'est pas plafonné.
func TestRoyaltiesReport_BucketsParBeneficiaire(t *testing.T) {
	now := time.Now()
	var royalties []repository.RoyaltyRow
	for i := 0; i < 12; i++ {
		royalties = append(royalties, repository.RoyaltyRow{
			ID: "r" + string(rune('a'+i)), WorkID: "w1", WorkTitle: "Maths 3e",
			UserID: "u1", UserName: strptr("Jean Nzue"),
			Amount: dec("10.00"), Paid: false, CreatedAt: now,
		})
	}
	royalties = append(royalties, repository.RoyaltyRow{
		ID: "rp", WorkID: "w1", WorkTitle: "Maths 3e",
		UserID: "u1", UserName: strptr("Jean Nzue"),
		Amount: dec("30.00"), Paid: true, CreatedAt: now,
	})
	royalties = append(royalties, repository.RoyaltyRow{
		ID: "rx", WorkID: "w2", WorkTitle: "Atlas",
		UserID: "u2", Amount: dec("7.00"), Paid: false, CreatedAt: now,
	})

	uc := finance.New(&fakeFinanceRepo{royalties: royalties}, nil)
	out, err := uc.RoyaltiesReport(context.Background(), dtoPeriod("", ""), nil, nil)
	require.NoError(t, err)

	assert.True(t, out.TotalRoyalties.Equal(dec("157.00")))
	assert.True(t, out.TotalPending.Equal(dec("127.00")))

	u1 := out.RoyaltiesByAuthor["u1"]
	assert.Equal(t, "Jean Nzue", u1.Author)
	assert.True(t, u1.Total.Equal(u1.Paid.Add(u1.Pending)), "total = payé + en attente")
	assert.True(t, u1.Paid.Equal(dec("30.00")))

	u2 := out.RoyaltiesByAuthor["u2"]
	assert.Equal(t, "N/A", u2.Author, "bénéficiaire sans nom → N/A")

	require.Len(t, out.RecentRoyalties, 10, "liste récente plafonnée à 10")
	assert.Len(t, out.PendingPayments, 13, "liste des impayés non plafonnée")

	// Bénéficiaire imbriqué {id, name}, comme dans pendingPayments.
	recent := out.RecentRoyalties[0]
	assert.Equal(t, "u1", recent.User.ID)
	assert.Equal(t, "Jean Nzue", recent.User.Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rapport de performance des partenaires
// ──────────────────────────────────────────────────────────────────────────────

// Le roster complet est retourné : un partenaire sans commande apparaît avec
// des statistiques à zéro et le statut UNKNOWN sans utilisateur lié.
func TestPartnerPerformance_RosterComplet(t *testing.T) {
	pid1, pid2 := "p1", "p2"
	repo := &fakeFinanceRepo{
		partners: []repository.PartnerRow{
			{ID: pid1, Name: "Librairie du Centre", Type: "LIBRAIRIE", UserStatus: strptr("ACTIVE")},
			{ID: pid2, Name: "École Horizon", Type: "ECOLE"}, // sans utilisateur lié
		},
		partnerOrders: []repository.OrderRow{
			{ID: "o1", Status: "DELIVERED", Total: dec("100.00"), PartnerID: &pid1, CreatedAt: time.Now(),
				Items: []repository.OrderItemRow{{ID: "i1", WorkID: "w1", Quantity: 4, Price: dec("25.00")}}},
		},
	}
	uc := finance.New(repo, nil)

	out, err := uc.PartnerPerformance(context.Background(), dtoPeriod("", ""), nil, nil)
	require.NoError(t, err)

	require.Len(t, out.Partners, 2, "le roster complet, commandes ou pas")
	assert.Equal(t, 1, out.ActivePartners)
	assert.True(t, out.TotalRevenue.Equal(dec("100.00")))

	p1 := out.Partners[0]
	assert.Equal(t, 1, p1.OrdersCount)
	assert.Equal(t, 4, p1.TotalItems)
	assert.True(t, p1.AvgOrderValue.Equal(dec("100.00")))

	p2 := out.Partners[1]
	assert.Equal(t, 0, p2.OrdersCount)
	assert.True(t, p2.TotalRevenue.IsZero())
	assert.Equal(t, "UNKNOWN", p2.UserStatus)
}

// Règle d'éligibilité : une PENDING payée compte, une PENDING sans référence
// de paiement et une CANCELLED ne comptent pas.
func TestPartnerPerformance_EligibiliteDesCommandes(t *testing.T) {
	pid := "p1"
	payRef := "PAY-001"
	empty := ""
	repo := &fakeFinanceRepo{
		partners: []repository.PartnerRow{
			{ID: pid, Name: "Librairie du Centre", Type: "LIBRAIRIE", UserStatus: strptr("ACTIVE")},
		},
		partnerOrders: []repository.OrderRow{
			{ID: "o1", Status: "PENDING", Total: dec("10.00"), PartnerID: &pid, PaymentReference: &payRef, CreatedAt: time.Now()},
			{ID: "o2", Status: "PENDING", Total: dec("20.00"), PartnerID: &pid, CreatedAt: time.Now()},
			{ID: "o3", Status: "PENDING", Total: dec("40.00"), PartnerID: &pid, PaymentReference: &empty, CreatedAt: time.Now()},
			{ID: "o4", Status: "CANCELLED", Total: dec("80.00"), PartnerID: &pid, CreatedAt: time.Now()},
			{ID: "o5", Status: "VALIDATED", Total: dec("160.00"), PartnerID: &pid, CreatedAt: time.Now()},
		},
	}
	uc := finance.New(repo, nil)

	out, err := uc.PartnerPerformance(context.Background(), dtoPeriod("", ""), nil, nil)
	require.NoError(t, err)

	require.Len(t, out.Partners, 1)
	p := out.Partners[0]
	assert.Equal(t, 2, p.OrdersCount, "seules la PENDING payée et la VALIDATED comptent")
	assert.True(t, p.TotalRevenue.Equal(dec("170.00")), "10 + 160, obtenu %s", p.TotalRevenue)
	assert.True(t, out.TotalRevenue.Equal(dec("170.00")))
}
