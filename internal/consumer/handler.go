package consumer

import (
	searchConsumer "search-srv/internal/search/delivery/kafka/consumer"
	searchPostgre "search-srv/internal/search/repository/postgre"
	searchUsecase "search-srv/internal/search/usecase"
)

// setupDomain initializes the search domain layers for the consumer binary.
// The consumer needs neither the result cache nor the event publisher, so
// both are nil.
func (srv *ConsumerServer) setupDomain() *searchConsumer.Handler {
	catalogRepo := searchPostgre.New(srv.postgresDB, srv.l)
	searchUC := searchUsecase.New(srv.l, catalogRepo, nil, nil, srv.searchConfig)

	return searchConsumer.New(srv.l, searchUC)
}
