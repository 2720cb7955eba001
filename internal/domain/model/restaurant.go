package model

// レストランの所在地（ワイヤ形式）
type Endereco struct {
	Rua    string `json:"rua"`
	Numero string `json:"numero"`
	Cidade string `json:"cidade"`
	Estado string `json:"estado"`
	CEP    string `json:"cep"`
}

type Restaurant struct {
	ID         string   `json:"id"`
	Nome       string   `json:"nome"`
	Endereco   Endereco `json:"endereco"`
	Categories []string `json:"categories"`
	IsOpen     bool     `json:"isOpen"`

	//オーナーのユーザーID（店側ダッシュボードの所有チェックに使う）
	UserID string `json:"userId"`

	ImageURL string `json:"imageUrl"`
}
