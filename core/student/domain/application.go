package domain

func NewApp(reader StudentReadStore, writer StudentWriteStore, address AddressFetcher) *Application {
	return &Application{reader: reader, writer: writer, address: address}
}
