// seed insère un jeu de données de démonstration : disciplines, un
// utilisateur par rôle, quelques œuvres, commandes, ventes directes et droits.
//
// Usage : go run ./cmd/seed
// Idempotent sur les emails et ISBN (les doublons sont ignorés).
package main

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/obame-dev/editions-api/internal/domain"
	"github.com/obame-dev/editions-api/internal/domain/entity"
	"github.com/obame-dev/editions-api/internal/infrastructure/postgres"
	"github.com/obame-dev/editions-api/pkg/config"
	"github.com/obame-dev/editions-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("chargement de la configuration : " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	disciplines := postgres.NewDisciplineRepository(pool)
	works := postgres.NewWorkRepository(pool)
	orders := postgres.NewOrderRepository(pool)
	sales := postgres.NewSaleRepository(pool)
	royalties := postgres.NewRoyaltyRepository(pool)
	partners := postgres.NewPartnerRepository(pool)

	now := time.Now()
	hash, _ := bcrypt.GenerateFromPassword([]byte("motdepasse"), bcrypt.DefaultCost)

	seedUsers := []entity.User{
		{ID: uuid.NewString(), Email: "pdg@editions.fr", Name: "Marie Obame", Role: entity.RolePDG},
		{ID: uuid.NewString(), Email: "auteur@editions.fr", Name: "Jean Nzue", Role: entity.RoleAuteur},
		{ID: uuid.NewString(), Email: "concepteur@editions.fr", Name: "Awa Diallo", Role: entity.RoleConcepteur},
		{ID: uuid.NewString(), Email: "representant@editions.fr", Name: "Paul Mba", Role: entity.RoleRepresentant},
		{ID: uuid.NewString(), Email: "partenaire@editions.fr", Name: "Librairie du Centre", Role: entity.RolePartenaire},
		{ID: uuid.NewString(), Email: "client@editions.fr", Name: "Claire Ondo", Role: entity.RoleClient},
	}
	byRole := map[string]*entity.User{}
	for i := range seedUsers {
		u := &seedUsers[i]
		u.PasswordHash = string(hash)
		u.Status = entity.UserStatusActive
		u.CreatedAt = now
		u.UpdatedAt = now
		if err := users.Create(ctx, u); err != nil {
			if errors.Is(err, domain.ErrEmailAlreadyExists) {
				existing, _ := users.FindByEmail(ctx, u.Email)
				if existing != nil {
					*u = *existing
				}
			} else {
				log.Fatal().Err(err).Str("email", u.Email).Msg("insertion utilisateur")
			}
		}
		byRole[u.Role] = u
	}

	seedDisciplines := []entity.Discipline{
		{ID: uuid.NewString(), Name: "Mathématiques"},
		{ID: uuid.NewString(), Name: "Français"},
		{ID: uuid.NewString(), Name: "Sciences de la Vie et de la Terre"},
	}
	for i := range seedDisciplines {
		if err := disciplines.Create(ctx, &seedDisciplines[i]); err != nil && !errors.Is(err, domain.ErrDuplicate) {
			log.Fatal().Err(err).Msg("insertion discipline")
		}
	}

	author := byRole[entity.RoleAuteur]
	concepteur := byRole[entity.RoleConcepteur]
	seedWorks := []entity.Work{
		{Title: "Mathématiques 3e", ISBN: "978-2-01-000001-1", Price: decimal.NewFromFloat(8500), DisciplineID: seedDisciplines[0].ID, Stock: 120},
		{Title: "Grammaire du Français", ISBN: "978-2-01-000002-8", Price: decimal.NewFromFloat(6200), DisciplineID: seedDisciplines[1].ID, Stock: 80},
		{Title: "SVT Terminale", ISBN: "978-2-01-000003-5", Price: decimal.NewFromFloat(9900), DisciplineID: seedDisciplines[2].ID, Stock: 60},
	}
	for i := range seedWorks {
		w := &seedWorks[i]
		w.ID = uuid.NewString()
		w.AuthorID = &author.ID
		w.ConcepteurID = &concepteur.ID
		w.Status = entity.WorkStatusPublished
		w.CreatedAt = now
		w.UpdatedAt = now
		if err := works.Create(ctx, w); err != nil && !errors.Is(err, domain.ErrISBNAlreadyExists) {
			log.Fatal().Err(err).Str("isbn", w.ISBN).Msg("insertion œuvre")
		}
	}

	partnerUser := byRole[entity.RolePartenaire]
	partner := &entity.Partner{
		ID:        uuid.NewString(),
		Name:      "Librairie du Centre",
		Type:      entity.PartnerTypeLibrairie,
		UserID:    &partnerUser.ID,
		CreatedAt: now,
	}
	if err := partners.Create(ctx, partner); err != nil && !errors.Is(err, domain.ErrDuplicate) {
		log.Fatal().Err(err).Msg("insertion partenaire")
	}

	client := byRole[entity.RoleClient]
	payRef := "PAY-2026-0001"
	seedOrders := []entity.Order{
		{
			UserID: &client.ID, Status: entity.OrderStatusDelivered,
			Items: []entity.OrderItem{
				{WorkID: seedWorks[0].ID, Quantity: 2, Price: seedWorks[0].Price},
				{WorkID: seedWorks[1].ID, Quantity: 1, Price: seedWorks[1].Price},
			},
		},
		{
			PartnerID: &partner.ID, Status: entity.OrderStatusPending, PaymentReference: &payRef,
			Items: []entity.OrderItem{
				{WorkID: seedWorks[2].ID, Quantity: 10, Price: seedWorks[2].Price},
			},
		},
	}
	for i := range seedOrders {
		o := &seedOrders[i]
		o.ID = uuid.NewString()
		o.Total = decimal.Zero
		o.CreatedAt = now.AddDate(0, 0, -i)
		for j := range o.Items {
			o.Items[j].ID = uuid.NewString()
			o.Items[j].OrderID = o.ID
		}
		if err := orders.Create(ctx, o); err != nil {
			log.Fatal().Err(err).Msg("insertion commande")
		}
	}

	sale := &entity.Sale{
		ID:        uuid.NewString(),
		WorkID:    seedWorks[0].ID,
		Quantity:  3,
		Amount:    seedWorks[0].Price.Mul(decimal.NewFromInt(3)),
		CreatedAt: now,
	}
	if err := sales.Create(ctx, sale); err != nil {
		log.Fatal().Err(err).Msg("insertion vente")
	}

	royalty := &entity.Royalty{
		ID:        uuid.NewString(),
		WorkID:    seedWorks[0].ID,
		UserID:    author.ID,
		Amount:    decimal.NewFromFloat(1700),
		Paid:      false,
		CreatedAt: now,
	}
	if err := royalties.CreateBatch(ctx, []*entity.Royalty{royalty}); err != nil {
		log.Fatal().Err(err).Msg("insertion droit")
	}

	log.Info().Msg("jeu de données de démonstration inséré")
}
