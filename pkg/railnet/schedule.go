package railnet

// ScheduleEntry ("horaire") is one scheduled train run. It is created and
// edited by the admin collaborator and read-only here.
type ScheduleEntry struct {
	ID          int64  `json:"id" groups:"basic,detailed"`
	TrainNumber string `json:"numero_train" groups:"basic,detailed"`
	TrainType   string `json:"type_train" groups:"basic,detailed"`

	DepartureStationID   int64  `json:"depart_station_id" groups:"detailed"`
	DepartureStationCode string `json:"depart_station_code" groups:"detailed"`
	DepartureStationName string `json:"depart_station_name" groups:"detailed"`
	DepartureTime        string `json:"depart_time" groups:"detailed"`

	ArrivalStationID   int64  `json:"arrivee_station_id" groups:"detailed"`
	ArrivalStationCode string `json:"arrivee_station_code" groups:"detailed"`
	ArrivalStationName string `json:"arrivee_station_name" groups:"detailed"`
	ArrivalTime        string `json:"arrivee_time" groups:"detailed"`

	Stops StopList `json:"stops" groups:"detailed"`

	Circulation    WeeklyCirculationPattern `json:"jours_circulation" groups:"detailed"`
	RunsOnHolidays bool                     `json:"circule_feries" groups:"detailed"`
	RunsOnSundays  bool                     `json:"circule_dimanches" groups:"detailed"`
	OverrideDates  FlexStrings              `json:"dates_specifiques,omitempty" groups:"detailed"`

	PlatformAssignments PlatformMap `json:"attribution_quais,omitempty" groups:"detailed"`
}

func (s *ScheduleEntry) DepartureRef() StationRef {
	return StationRef{
		ID:   s.DepartureStationID,
		Code: s.DepartureStationCode,
		Name: s.DepartureStationName,
	}
}

func (s *ScheduleEntry) ArrivalRef() StationRef {
	return StationRef{
		ID:   s.ArrivalStationID,
		Code: s.ArrivalStationCode,
		Name: s.ArrivalStationName,
	}
}

// Stop is one intermediate halt of a schedule entry.
type Stop struct {
	StationID   int64  `json:"station_id,omitempty" groups:"basic,detailed"`
	StationCode string `json:"station_code,omitempty" groups:"basic,detailed"`
	StationName string `json:"station_name,omitempty" groups:"basic,detailed"`

	ArrivalTime   string `json:"arrivee_time,omitempty" groups:"basic,detailed"`
	DepartureTime string `json:"depart_time,omitempty" groups:"basic,detailed"`

	Platform string `json:"voie,omitempty" groups:"basic,detailed"`
}

func (s *Stop) Ref() StationRef {
	return StationRef{
		ID:   s.StationID,
		Code: s.StationCode,
		Name: s.StationName,
	}
}

// WeeklyCirculationPattern holds the seven Mon..Sun circulation flags.
type WeeklyCirculationPattern struct {
	Monday    bool `json:"lun" groups:"detailed"`
	Tuesday   bool `json:"mar" groups:"detailed"`
	Wednesday bool `json:"mer" groups:"detailed"`
	Thursday  bool `json:"jeu" groups:"detailed"`
	Friday    bool `json:"ven" groups:"detailed"`
	Saturday  bool `json:"sam" groups:"detailed"`
	Sunday    bool `json:"dim" groups:"detailed"`
}

func (p WeeklyCirculationPattern) IsZero() bool {
	return p == WeeklyCirculationPattern{}
}
