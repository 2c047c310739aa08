package catalog

type CreateRoomRequest struct {
	RoomName    string   `json:"room_name" binding:"required"`
	RoomType    string   `json:"room_type" binding:"required"`
	RoomNumber  int      `json:"room_number"`
	TotalRooms  int      `json:"total_rooms"`
	Price       string   `json:"price" binding:"required"`
	RoomSize    string   `json:"room_size"`
	Guests      int      `json:"guests"`
	Description string   `json:"description"`
	ImageURLs   []string `json:"image_urls"`
	Amenities   []string `json:"amenities"`
}

type UpdateRoomRequest struct {
	RoomName    *string   `json:"room_name"`
	RoomType    *string   `json:"room_type"`
	RoomNumber  *int      `json:"room_number"`
	TotalRooms  *int      `json:"total_rooms"`
	Price       *string   `json:"price"`
	RoomSize    *string   `json:"room_size"`
	Guests      *int      `json:"guests"`
	Description *string   `json:"description"`
	ImageURLs   *[]string `json:"image_urls"`
	Amenities   *[]string `json:"amenities"`
}
