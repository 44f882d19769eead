package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/EquinoMarket/api-fornecedor/internal/agendamento"
	"github.com/EquinoMarket/api-fornecedor/internal/auth"
	"github.com/EquinoMarket/api-fornecedor/internal/cliente"
	"github.com/EquinoMarket/api-fornecedor/internal/clientefornecedor"
	"github.com/EquinoMarket/api-fornecedor/internal/comentario"
	"github.com/EquinoMarket/api-fornecedor/internal/curtida"
	"github.com/EquinoMarket/api-fornecedor/internal/despesa"
	"github.com/EquinoMarket/api-fornecedor/internal/favorito"
	"github.com/EquinoMarket/api-fornecedor/internal/financeiro"
	"github.com/EquinoMarket/api-fornecedor/internal/fornecedor"
	"github.com/EquinoMarket/api-fornecedor/internal/produto"
	"github.com/EquinoMarket/api-fornecedor/internal/relatorio"
	"github.com/EquinoMarket/api-fornecedor/internal/seed"
	"github.com/EquinoMarket/api-fornecedor/internal/utils/db"
	"github.com/EquinoMarket/api-fornecedor/internal/venda"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

func migrar(conexao *gorm.DB) {
	migracoes := []func(*gorm.DB) error{
		fornecedor.Migrate,
		cliente.Migrate,
		produto.Migrate,
		comentario.Migrate,
		curtida.Migrate,
		favorito.Migrate,
		clientefornecedor.Migrate,
		agendamento.Migrate,
		venda.Migrate,
		despesa.Migrate,
		financeiro.Migrate,
	}
	for _, m := range migracoes {
		if err := m(conexao); err != nil {
			log.Fatal("Erro no AutoMigrate:", err)
		}
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	conexao, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	migrar(conexao)
	seed.Executar(conexao)

	// Repositories
	clientesFornecedorRepo := clientefornecedor.NewRepository(conexao)
	produtoRepo := produto.NewRepository(conexao)
	agendamentoRepo := agendamento.NewRepository(conexao)
	vendaRepo := venda.NewRepository(conexao)
	despesaRepo := despesa.NewRepository(conexao)
	financeiroRepo := financeiro.NewRepository(conexao)
	fornecedorRepo := fornecedor.NewRepository()

	financeiroServico := financeiro.NewServico(vendaRepo, despesaRepo, financeiroRepo)

	// Handlers
	fornecedorHandler := fornecedor.NewHandler(conexao, fornecedorRepo)
	clienteHandler := cliente.NewHandler(conexao)
	produtoHandler := produto.NewHandler(produtoRepo)
	comentarioHandler := comentario.NewHandler(comentario.NewRepository(conexao))
	curtidaHandler := curtida.NewHandler(curtida.NewRepository(conexao))
	favoritoHandler := favorito.NewHandler(favorito.NewRepository(conexao))
	clientesHandler := clientefornecedor.NewHandler(clientesFornecedorRepo)
	agendamentoHandler := agendamento.NewHandler(agendamentoRepo, produtoRepo)
	vendaHandler := venda.NewHandler(vendaRepo, clientesFornecedorRepo)
	despesaHandler := despesa.NewHandler(despesaRepo)
	financeiroHandler := financeiro.NewHandler(financeiroServico)
	relatorioHandler := relatorio.NewHandler(conexao, financeiroServico, fornecedorRepo)

	// Expiração diária de agendamentos pendentes
	expirador := agendamento.NewExpirador(agendamentoRepo)
	if err := expirador.Start(); err != nil {
		log.Fatal("Erro ao iniciar expirador de agendamentos:", err)
	}
	defer expirador.Stop()

	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/fornecedores", fornecedorHandler.CriarFornecedor).Methods("POST")
	r.HandleFunc("/fornecedores", fornecedorHandler.BuscarFornecedores).Methods("GET")
	r.HandleFunc("/fornecedores/login", fornecedorHandler.Login).Methods("POST")
	r.HandleFunc("/clientes", clienteHandler.Criar).Methods("POST")
	r.HandleFunc("/clientes/login", clienteHandler.Login).Methods("POST")
	r.HandleFunc("/produtos", produtoHandler.Vitrine).Methods("GET")
	r.HandleFunc("/produtos/{id}", produtoHandler.Buscar).Methods("GET")
	r.HandleFunc("/produtos/{id}/comentarios", comentarioHandler.ListarPorProduto).Methods("GET")
	r.HandleFunc("/produtos/{id}/curtidas", curtidaHandler.Contar).Methods("GET")

	// Rotas do fornecedor autenticado
	me := r.PathPrefix("/fornecedores/me").Subrouter()
	me.Use(auth.MiddlewareAutenticacao, auth.RequireFornecedor)
	me.HandleFunc("", fornecedorHandler.MeuPerfil).Methods("GET")
	me.HandleFunc("", fornecedorHandler.AtualizarPerfil).Methods("PUT")
	me.HandleFunc("", fornecedorHandler.DeletarConta).Methods("DELETE")
	me.HandleFunc("/produtos", produtoHandler.Criar).Methods("POST")
	me.HandleFunc("/produtos", produtoHandler.MeusProdutos).Methods("GET")
	me.HandleFunc("/produtos/{id}", produtoHandler.Atualizar).Methods("PUT")
	me.HandleFunc("/produtos/{id}", produtoHandler.Deletar).Methods("DELETE")
	me.HandleFunc("/clientes", clientesHandler.Criar).Methods("POST")
	me.HandleFunc("/clientes", clientesHandler.Listar).Methods("GET")
	me.HandleFunc("/clientes/{id}", clientesHandler.Atualizar).Methods("PUT")
	me.HandleFunc("/clientes/{id}", clientesHandler.Deletar).Methods("DELETE")
	me.HandleFunc("/vendas", vendaHandler.Criar).Methods("POST")
	me.HandleFunc("/vendas", vendaHandler.Listar).Methods("GET")
	me.HandleFunc("/vendas/{id}", vendaHandler.Deletar).Methods("DELETE")
	me.HandleFunc("/despesas", despesaHandler.Criar).Methods("POST")
	me.HandleFunc("/despesas", despesaHandler.Listar).Methods("GET")
	me.HandleFunc("/despesas/{id}", despesaHandler.Deletar).Methods("DELETE")
	me.HandleFunc("/agendamentos", agendamentoHandler.ListarDoFornecedor).Methods("GET")
	me.HandleFunc("/financeiro/configuracao", financeiroHandler.BuscarConfiguracao).Methods("GET")
	me.HandleFunc("/financeiro/configuracao", financeiroHandler.AtualizarConfiguracao).Methods("PUT")
	me.HandleFunc("/financeiro/resumo", financeiroHandler.Resumo).Methods("GET")
	me.HandleFunc("/financeiro/relatorio.csv", relatorioHandler.RelatorioCSV).Methods("GET")
	me.HandleFunc("/financeiro/relatorio.html", relatorioHandler.RelatorioHTML).Methods("GET")
	me.HandleFunc("/financeiro/relatorio.xlsx", relatorioHandler.RelatorioXLSX).Methods("GET")

	// Perfil público do fornecedor fica depois de /fornecedores/me no mux
	r.HandleFunc("/fornecedores/{id}", fornecedorHandler.BuscarPorID).Methods("GET")

	// Rotas do cliente autenticado
	meCliente := r.PathPrefix("/clientes/me").Subrouter()
	meCliente.Use(auth.MiddlewareAutenticacao, auth.RequireCliente)
	meCliente.HandleFunc("", clienteHandler.MeuPerfil).Methods("GET")
	meCliente.HandleFunc("", clienteHandler.AtualizarPerfil).Methods("PUT")
	meCliente.HandleFunc("", clienteHandler.DeletarConta).Methods("DELETE")
	meCliente.HandleFunc("/favoritos", favoritoHandler.Listar).Methods("GET")
	meCliente.HandleFunc("/agendamentos", agendamentoHandler.ListarDoCliente).Methods("GET")

	// Interações do cliente com o catálogo
	interacao := r.PathPrefix("/produtos/{id}").Subrouter()
	interacao.Use(auth.MiddlewareAutenticacao, auth.RequireCliente)
	interacao.HandleFunc("/comentarios", comentarioHandler.Criar).Methods("POST")
	interacao.HandleFunc("/curtida", curtidaHandler.Toggle).Methods("POST")
	interacao.HandleFunc("/favorito", favoritoHandler.Adicionar).Methods("POST")
	interacao.HandleFunc("/favorito", favoritoHandler.Remover).Methods("DELETE")

	comentarios := r.PathPrefix("/comentarios").Subrouter()
	comentarios.Use(auth.MiddlewareAutenticacao, auth.RequireCliente)
	comentarios.HandleFunc("/{id}", comentarioHandler.Remover).Methods("DELETE")

	// Agendamentos: criação só pelo cliente; mudança de status é decidida
	// dentro do handler conforme o perfil
	agendamentos := r.PathPrefix("/agendamentos").Subrouter()
	agendamentos.Use(auth.MiddlewareAutenticacao)
	agendamentos.Handle("", auth.RequireCliente(http.HandlerFunc(agendamentoHandler.Criar))).Methods("POST")
	agendamentos.HandleFunc("/{id}/status", agendamentoHandler.AtualizarStatus).Methods("PATCH")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	fmt.Println("Servidor rodando em http://localhost:" + porta)
	log.Fatal(http.ListenAndServe(":"+porta, handler))
}
