package agendamento

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Expirador roda diariamente marcando agendamentos pendentes vencidos.
type Expirador struct {
	cronScheduler *cron.Cron
	repo          *Repository
	jobID         cron.EntryID
}

func NewExpirador(repo *Repository) *Expirador {
	return &Expirador{
		cronScheduler: cron.New(),
		repo:          repo,
	}
}

// Start agenda a varredura diária às 03:00.
func (e *Expirador) Start() error {
	var err error
	e.jobID, err = e.cronScheduler.AddFunc("0 3 * * *", func() {
		e.executar()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar job de expiração: %w", err)
	}

	e.cronScheduler.Start()
	log.Println("Job de expiração de agendamentos agendado para 03:00")
	return nil
}

// Stop encerra o scheduler.
func (e *Expirador) Stop() {
	e.cronScheduler.Stop()
}

func (e *Expirador) executar() {
	total, err := e.repo.ExpirarPendentesAntesDe(time.Now())
	if err != nil {
		log.Printf("Erro ao expirar agendamentos pendentes: %v", err)
		return
	}
	if total > 0 {
		log.Printf("%d agendamento(s) pendente(s) marcados como expirados", total)
	}
}
